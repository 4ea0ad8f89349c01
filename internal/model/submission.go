package model

import (
	"time"
)

// Submission 蓝碳凭证提交记录
type Submission struct {
	Id        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 申请人信息
	ApplicantAddress string `json:"applicant_address"`
	Title            string `json:"title"`
	Description      string `json:"description" gorm:"type:text;not null"`
	Latitude         string `json:"latitude"`
	Longitude        string `json:"longitude"`

	// IPFS存储信息
	Cid      string `json:"cid" gorm:"not null"`
	ImageURL string `json:"image_url"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`

	// 状态
	Status SubmissionStatus `json:"status" gorm:"default:'pending'"`

	// 上链凭证信息（铸造后回填）
	TxHash      string `json:"tx_hash"`
	TokenId     string `json:"token_id"`
	MetadataURI string `json:"metadata_uri"`
}

// SubmissionStatus 提交记录状态
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"  // 待铸造
	SubmissionStatusApproved SubmissionStatus = "approved" // 已铸造
)

// TableName 自定义表名
func (Submission) TableName() string {
	return "submission"
}
