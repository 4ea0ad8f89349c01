package model

import (
	"time"
)

// MRVRecord 监测、报告与核查（MRV）记录
type MRVRecord struct {
	Id        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 所属项目（仅作引用，不做外键约束）
	ProjectId string `json:"project_id" gorm:"index;not null"`

	// 监测信息
	Date       string `json:"date" gorm:"not null"`
	MRVType    string `json:"mrv_type" gorm:"not null"`
	DataSource string `json:"data_source"`

	// 植被指数
	NDVI float64 `json:"ndvi"`
	EVI  float64 `json:"evi"`

	// 碳储量与变化检测
	CarbonStock     float64 `json:"carbon_stock"`
	ChangeDetection string  `json:"change_detection"`

	// 状态
	Status MRVStatus `json:"status" gorm:"default:'pending'"`
}

// MRVStatus MRV记录状态
type MRVStatus string

const (
	MRVStatusPending  MRVStatus = "pending"  // 待核查
	MRVStatusVerified MRVStatus = "verified" // 已核查
)

// TableName 自定义表名
func (MRVRecord) TableName() string {
	return "mrv_record"
}
