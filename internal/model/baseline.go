package model

import (
	"time"
)

// Baseline 项目基线监测数据
type Baseline struct {
	Id        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 所属项目（仅作引用，不做外键约束）
	ProjectId string `json:"project_id" gorm:"index;not null"`

	// 采样测量数据
	VegetationCover  string `json:"vegetation_cover"`
	SoilCarbon       string `json:"soil_carbon"`
	SamplingDate     string `json:"sampling_date" gorm:"not null"`
	SamplingMethod   string `json:"sampling_method"`
	LabCertification string `json:"lab_certification"`

	// 推算碳储量
	CarbonStock float64 `json:"carbon_stock"`
}

// TableName 自定义表名
func (Baseline) TableName() string {
	return "baseline"
}
