package logic

import (
	"context"
	"time"

	"github.com/bluecarbon/bcms/internal/apperr"
	"github.com/bluecarbon/bcms/internal/model"
	"github.com/bluecarbon/bcms/internal/store"
	"github.com/google/uuid"
)

// MonitoringLogic 基线、活动与MRV记录业务逻辑
type MonitoringLogic struct {
	store store.Store
}

// NewMonitoringLogic 创建监测数据业务逻辑
func NewMonitoringLogic(s store.Store) *MonitoringLogic {
	return &MonitoringLogic{store: s}
}

// CreateBaseline 创建基线数据
func (l *MonitoringLogic) CreateBaseline(ctx context.Context, baseline *model.Baseline) error {
	if baseline.ProjectId == "" {
		return apperr.Validation("missing projectId")
	}
	if baseline.SamplingDate == "" {
		return apperr.Validation("missing samplingDate")
	}

	baseline.Id = uuid.NewString()
	baseline.CreatedAt = time.Now()

	return l.store.CreateBaseline(ctx, baseline)
}

// GetBaselines 获取项目的基线数据
func (l *MonitoringLogic) GetBaselines(ctx context.Context, projectId string) ([]model.Baseline, error) {
	return l.store.ListBaselinesByProject(ctx, projectId)
}

// CreateActivity 创建活动记录
func (l *MonitoringLogic) CreateActivity(ctx context.Context, activity *model.Activity) error {
	if activity.ProjectId == "" {
		return apperr.Validation("missing projectId")
	}
	if activity.ActivityType == "" {
		return apperr.Validation("missing activityType")
	}
	if activity.Date == "" {
		return apperr.Validation("missing date")
	}

	activity.Id = uuid.NewString()
	activity.CreatedAt = time.Now()
	if activity.Status == "" {
		activity.Status = model.ActivityStatusPlanned
	}

	return l.store.CreateActivity(ctx, activity)
}

// GetActivities 获取项目的活动记录
func (l *MonitoringLogic) GetActivities(ctx context.Context, projectId string) ([]model.Activity, error) {
	return l.store.ListActivitiesByProject(ctx, projectId)
}

// CreateMRVRecord 创建MRV记录
func (l *MonitoringLogic) CreateMRVRecord(ctx context.Context, record *model.MRVRecord) error {
	if record.ProjectId == "" {
		return apperr.Validation("missing projectId")
	}
	if record.Date == "" {
		return apperr.Validation("missing date")
	}
	if record.MRVType == "" {
		return apperr.Validation("missing mrvType")
	}

	record.Id = uuid.NewString()
	record.CreatedAt = time.Now()
	if record.Status == "" {
		record.Status = model.MRVStatusPending
	}

	return l.store.CreateMRVRecord(ctx, record)
}

// GetMRVRecords 获取项目的MRV记录
func (l *MonitoringLogic) GetMRVRecords(ctx context.Context, projectId string) ([]model.MRVRecord, error) {
	return l.store.ListMRVRecordsByProject(ctx, projectId)
}
