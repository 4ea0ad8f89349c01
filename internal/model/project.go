package model

import (
	"time"
)

// Project 蓝碳修复项目
type Project struct {
	ProjectId string    `json:"project_id" gorm:"primaryKey;size:64"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	ProjectName   string `json:"project_name" gorm:"not null"`
	Latitude      string `json:"latitude" gorm:"not null"`
	Longitude     string `json:"longitude" gorm:"not null"`
	EcosystemType string `json:"ecosystem_type" gorm:"not null"`
	Description   string `json:"description" gorm:"type:text"`

	// 权属与实施信息
	Ownership          string `json:"ownership"`
	Governance         string `json:"governance"`
	ImplementingAgency string `json:"implementing_agency" gorm:"not null"`

	// 面积与建立时间
	AreaHectares  float64 `json:"area_hectares"`
	EstablishedOn string  `json:"established_on"`

	// 汇总碳储量（由定时任务从基线数据汇总回填）
	CarbonStock float64 `json:"carbon_stock"`

	// 状态
	Status ProjectStatus `json:"status" gorm:"default:'draft'"`
}

// ProjectStatus 项目状态
type ProjectStatus string

const (
	ProjectStatusDraft     ProjectStatus = "draft"     // 草稿
	ProjectStatusSubmitted ProjectStatus = "submitted" // 已提交
)

// TableName 自定义表名
func (Project) TableName() string {
	return "project"
}
