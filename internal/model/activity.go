package model

import (
	"time"
)

// Activity 项目种植养护活动记录
type Activity struct {
	Id        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 所属项目（仅作引用，不做外键约束）
	ProjectId string `json:"project_id" gorm:"index;not null"`

	// 活动信息
	ActivityType     string  `json:"activity_type" gorm:"not null"`
	Date             string  `json:"date" gorm:"not null"`
	Species          string  `json:"species"`
	SaplingCount     int64   `json:"sapling_count"`
	AreaHectares     float64 `json:"area_hectares"`
	MaintenanceNotes string  `json:"maintenance_notes" gorm:"type:text"`
	Crew             string  `json:"crew"`
	Latitude         string  `json:"latitude"`
	Longitude        string  `json:"longitude"`

	// 现场照片CID列表（逗号分隔）
	PhotoCids string `json:"photo_cids"`

	// 状态
	Status ActivityStatus `json:"status" gorm:"default:'planned'"`
}

// ActivityStatus 活动状态
type ActivityStatus string

const (
	ActivityStatusPlanned   ActivityStatus = "planned"   // 已计划
	ActivityStatusCompleted ActivityStatus = "completed" // 已完成
)

// TableName 自定义表名
func (Activity) TableName() string {
	return "activity"
}
