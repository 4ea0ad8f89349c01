package handler

import (
	"time"

	"github.com/bluecarbon/bcms/internal/model"
)

// 请求模型（wire字段统一为camelCase）

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	ProjectId          string  `json:"projectId"`
	ProjectName        string  `json:"projectName"`
	Latitude           string  `json:"latitude"`
	Longitude          string  `json:"longitude"`
	EcosystemType      string  `json:"ecosystemType"`
	Ownership          string  `json:"ownership"`
	Governance         string  `json:"governance"`
	ImplementingAgency string  `json:"implementingAgency"`
	Description        string  `json:"description"`
	AreaHectares       float64 `json:"areaHectares"`
	EstablishedOn      string  `json:"establishedOn"`
}

// CreateBaselineRequest 创建基线数据请求
type CreateBaselineRequest struct {
	ProjectId        string  `json:"projectId"`
	VegetationCover  string  `json:"vegetationCover"`
	SoilCarbon       string  `json:"soilCarbon"`
	SamplingDate     string  `json:"samplingDate"`
	SamplingMethod   string  `json:"samplingMethod"`
	LabCertification string  `json:"labCertification"`
	CarbonStock      float64 `json:"carbonStock"`
}

// CreateActivityRequest 创建活动记录请求
type CreateActivityRequest struct {
	ProjectId        string  `json:"projectId"`
	ActivityType     string  `json:"activityType"`
	Date             string  `json:"date"`
	Species          string  `json:"species"`
	SaplingCount     int64   `json:"saplingCount"`
	AreaHectares     float64 `json:"areaHectares"`
	MaintenanceNotes string  `json:"maintenanceNotes"`
	Crew             string  `json:"crew"`
	Latitude         string  `json:"latitude"`
	Longitude        string  `json:"longitude"`
	PhotoCids        string  `json:"photoCids"`
}

// CreateMRVRequest 创建MRV记录请求
type CreateMRVRequest struct {
	ProjectId       string  `json:"projectId"`
	Date            string  `json:"date"`
	MRVType         string  `json:"mrvType"`
	DataSource      string  `json:"dataSource"`
	NDVI            float64 `json:"ndvi"`
	EVI             float64 `json:"evi"`
	CarbonStock     float64 `json:"carbonStock"`
	ChangeDetection string  `json:"changeDetection"`
}

// 响应模型

// SubmissionResponse 提交记录响应模型
type SubmissionResponse struct {
	Id               string    `json:"id"`
	ApplicantAddress string    `json:"applicantAddress,omitempty"`
	Title            string    `json:"title,omitempty"`
	Description      string    `json:"description"`
	Latitude         string    `json:"latitude,omitempty"`
	Longitude        string    `json:"longitude,omitempty"`
	Cid              string    `json:"cid"`
	ImageURL         string    `json:"imageUrl"`
	FileName         string    `json:"fileName"`
	FileType         string    `json:"fileType"`
	FileSize         int64     `json:"fileSize"`
	Status           string    `json:"status"`
	TxHash           string    `json:"txHash,omitempty"`
	TokenId          string    `json:"tokenId,omitempty"`
	MetadataURI      string    `json:"metadataURI,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ProjectResponse 项目响应模型
type ProjectResponse struct {
	ProjectId          string    `json:"projectId"`
	ProjectName        string    `json:"projectName"`
	Latitude           string    `json:"latitude"`
	Longitude          string    `json:"longitude"`
	EcosystemType      string    `json:"ecosystemType"`
	Ownership          string    `json:"ownership,omitempty"`
	Governance         string    `json:"governance,omitempty"`
	ImplementingAgency string    `json:"implementingAgency"`
	Description        string    `json:"description,omitempty"`
	AreaHectares       float64   `json:"areaHectares"`
	EstablishedOn      string    `json:"establishedOn,omitempty"`
	CarbonStock        float64   `json:"carbonStock"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
}

// BaselineResponse 基线数据响应模型
type BaselineResponse struct {
	Id               string    `json:"id"`
	ProjectId        string    `json:"projectId"`
	VegetationCover  string    `json:"vegetationCover,omitempty"`
	SoilCarbon       string    `json:"soilCarbon,omitempty"`
	SamplingDate     string    `json:"samplingDate"`
	SamplingMethod   string    `json:"samplingMethod,omitempty"`
	LabCertification string    `json:"labCertification,omitempty"`
	CarbonStock      float64   `json:"carbonStock"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ActivityResponse 活动记录响应模型
type ActivityResponse struct {
	Id               string    `json:"id"`
	ProjectId        string    `json:"projectId"`
	ActivityType     string    `json:"activityType"`
	Date             string    `json:"date"`
	Species          string    `json:"species,omitempty"`
	SaplingCount     int64     `json:"saplingCount"`
	AreaHectares     float64   `json:"areaHectares"`
	MaintenanceNotes string    `json:"maintenanceNotes,omitempty"`
	Crew             string    `json:"crew,omitempty"`
	Latitude         string    `json:"latitude,omitempty"`
	Longitude        string    `json:"longitude,omitempty"`
	PhotoCids        string    `json:"photoCids,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// MRVResponse MRV记录响应模型
type MRVResponse struct {
	Id              string    `json:"id"`
	ProjectId       string    `json:"projectId"`
	Date            string    `json:"date"`
	MRVType         string    `json:"mrvType"`
	DataSource      string    `json:"dataSource,omitempty"`
	NDVI            float64   `json:"ndvi"`
	EVI             float64   `json:"evi"`
	CarbonStock     float64   `json:"carbonStock"`
	ChangeDetection string    `json:"changeDetection,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// 转换函数

// ToSubmissionResponse 将数据库模型转换为响应模型
func ToSubmissionResponse(submission *model.Submission) SubmissionResponse {
	return SubmissionResponse{
		Id:               submission.Id,
		ApplicantAddress: submission.ApplicantAddress,
		Title:            submission.Title,
		Description:      submission.Description,
		Latitude:         submission.Latitude,
		Longitude:        submission.Longitude,
		Cid:              submission.Cid,
		ImageURL:         submission.ImageURL,
		FileName:         submission.FileName,
		FileType:         submission.FileType,
		FileSize:         submission.FileSize,
		Status:           string(submission.Status),
		TxHash:           submission.TxHash,
		TokenId:          submission.TokenId,
		MetadataURI:      submission.MetadataURI,
		CreatedAt:        submission.CreatedAt,
	}
}

// ToSubmissionResponseList 将数据库模型列表转换为响应模型列表
func ToSubmissionResponseList(submissions []model.Submission) []SubmissionResponse {
	result := make([]SubmissionResponse, len(submissions))
	for i, submission := range submissions {
		result[i] = ToSubmissionResponse(&submission)
	}
	return result
}

// ToProjectResponse 将数据库模型转换为响应模型
func ToProjectResponse(project *model.Project) ProjectResponse {
	return ProjectResponse{
		ProjectId:          project.ProjectId,
		ProjectName:        project.ProjectName,
		Latitude:           project.Latitude,
		Longitude:          project.Longitude,
		EcosystemType:      project.EcosystemType,
		Ownership:          project.Ownership,
		Governance:         project.Governance,
		ImplementingAgency: project.ImplementingAgency,
		Description:        project.Description,
		AreaHectares:       project.AreaHectares,
		EstablishedOn:      project.EstablishedOn,
		CarbonStock:        project.CarbonStock,
		Status:             string(project.Status),
		CreatedAt:          project.CreatedAt,
	}
}

// ToProjectResponseList 将数据库模型列表转换为响应模型列表
func ToProjectResponseList(projects []model.Project) []ProjectResponse {
	result := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		result[i] = ToProjectResponse(&project)
	}
	return result
}

// ToBaselineResponse 将数据库模型转换为响应模型
func ToBaselineResponse(baseline *model.Baseline) BaselineResponse {
	return BaselineResponse{
		Id:               baseline.Id,
		ProjectId:        baseline.ProjectId,
		VegetationCover:  baseline.VegetationCover,
		SoilCarbon:       baseline.SoilCarbon,
		SamplingDate:     baseline.SamplingDate,
		SamplingMethod:   baseline.SamplingMethod,
		LabCertification: baseline.LabCertification,
		CarbonStock:      baseline.CarbonStock,
		CreatedAt:        baseline.CreatedAt,
	}
}

// ToBaselineResponseList 将数据库模型列表转换为响应模型列表
func ToBaselineResponseList(baselines []model.Baseline) []BaselineResponse {
	result := make([]BaselineResponse, len(baselines))
	for i, baseline := range baselines {
		result[i] = ToBaselineResponse(&baseline)
	}
	return result
}

// ToActivityResponse 将数据库模型转换为响应模型
func ToActivityResponse(activity *model.Activity) ActivityResponse {
	return ActivityResponse{
		Id:               activity.Id,
		ProjectId:        activity.ProjectId,
		ActivityType:     activity.ActivityType,
		Date:             activity.Date,
		Species:          activity.Species,
		SaplingCount:     activity.SaplingCount,
		AreaHectares:     activity.AreaHectares,
		MaintenanceNotes: activity.MaintenanceNotes,
		Crew:             activity.Crew,
		Latitude:         activity.Latitude,
		Longitude:        activity.Longitude,
		PhotoCids:        activity.PhotoCids,
		Status:           string(activity.Status),
		CreatedAt:        activity.CreatedAt,
	}
}

// ToActivityResponseList 将数据库模型列表转换为响应模型列表
func ToActivityResponseList(activities []model.Activity) []ActivityResponse {
	result := make([]ActivityResponse, len(activities))
	for i, activity := range activities {
		result[i] = ToActivityResponse(&activity)
	}
	return result
}

// ToMRVResponse 将数据库模型转换为响应模型
func ToMRVResponse(record *model.MRVRecord) MRVResponse {
	return MRVResponse{
		Id:              record.Id,
		ProjectId:       record.ProjectId,
		Date:            record.Date,
		MRVType:         record.MRVType,
		DataSource:      record.DataSource,
		NDVI:            record.NDVI,
		EVI:             record.EVI,
		CarbonStock:     record.CarbonStock,
		ChangeDetection: record.ChangeDetection,
		Status:          string(record.Status),
		CreatedAt:       record.CreatedAt,
	}
}

// ToMRVResponseList 将数据库模型列表转换为响应模型列表
func ToMRVResponseList(records []model.MRVRecord) []MRVResponse {
	result := make([]MRVResponse, len(records))
	for i, record := range records {
		result[i] = ToMRVResponse(&record)
	}
	return result
}
