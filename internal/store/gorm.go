package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/bluecarbon/bcms/internal/apperr"
	"github.com/bluecarbon/bcms/internal/config"
	"github.com/bluecarbon/bcms/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// GormStore postgres存储实现
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 连接postgres并自动迁移表结构
func NewGormStore(cfg config.PostgresConfig) (*GormStore, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent), // 禁用 GORM 的默认日志输出
		NamingStrategy: &schema.NamingStrategy{
			SingularTable: true, // 禁用复数表名
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 自动迁移
	if err := db.AutoMigrate(
		&model.Submission{},
		&model.Project{},
		&model.Baseline{},
		&model.Activity{},
		&model.MRVRecord{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &GormStore{db: db}, nil
}

// NewGormStoreWithDB 用已有连接创建存储，测试用
func NewGormStoreWithDB(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// CreateSubmission 创建提交记录
func (s *GormStore) CreateSubmission(ctx context.Context, submission *model.Submission) error {
	if err := s.db.WithContext(ctx).Create(submission).Error; err != nil {
		return apperr.Storage("failed to create submission", err)
	}
	return nil
}

// ListSubmissions 按创建时间倒序获取提交记录列表
func (s *GormStore) ListSubmissions(ctx context.Context) ([]model.Submission, error) {
	var submissions []model.Submission
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&submissions).Error; err != nil {
		return nil, apperr.Storage("failed to list submissions", err)
	}
	return submissions, nil
}

// GetSubmission 获取单条提交记录
func (s *GormStore) GetSubmission(ctx context.Context, id string) (*model.Submission, error) {
	var submission model.Submission
	if err := s.db.WithContext(ctx).First(&submission, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "submission %s not found", id)
		}
		return nil, apperr.Storage("failed to get submission", err)
	}
	return &submission, nil
}

// UpdateSubmission 按列名patch更新提交记录并返回更新后的值
func (s *GormStore) UpdateSubmission(ctx context.Context, id string, patch map[string]interface{}) (*model.Submission, error) {
	result := s.db.WithContext(ctx).Model(&model.Submission{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return nil, apperr.Storage("failed to update submission", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperr.Newf(apperr.KindNotFound, "submission %s not found", id)
	}
	return s.GetSubmission(ctx, id)
}

// CreateProject 创建项目
func (s *GormStore) CreateProject(ctx context.Context, project *model.Project) error {
	if err := s.db.WithContext(ctx).Create(project).Error; err != nil {
		return apperr.Storage("failed to create project", err)
	}
	return nil
}

// ListProjects 按创建时间倒序获取项目列表
func (s *GormStore) ListProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, apperr.Storage("failed to list projects", err)
	}
	return projects, nil
}

// GetProject 获取单个项目
func (s *GormStore) GetProject(ctx context.Context, projectId string) (*model.Project, error) {
	var project model.Project
	if err := s.db.WithContext(ctx).First(&project, "project_id = ?", projectId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.KindNotFound, "project %s not found", projectId)
		}
		return nil, apperr.Storage("failed to get project", err)
	}
	return &project, nil
}

// UpdateProject 按列名patch更新项目并返回更新后的值
func (s *GormStore) UpdateProject(ctx context.Context, projectId string, patch map[string]interface{}) (*model.Project, error) {
	result := s.db.WithContext(ctx).Model(&model.Project{}).Where("project_id = ?", projectId).Updates(patch)
	if result.Error != nil {
		return nil, apperr.Storage("failed to update project", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperr.Newf(apperr.KindNotFound, "project %s not found", projectId)
	}
	return s.GetProject(ctx, projectId)
}

// CreateBaseline 创建基线数据
func (s *GormStore) CreateBaseline(ctx context.Context, baseline *model.Baseline) error {
	if err := s.db.WithContext(ctx).Create(baseline).Error; err != nil {
		return apperr.Storage("failed to create baseline", err)
	}
	return nil
}

// ListBaselines 按创建时间倒序获取全部基线数据
func (s *GormStore) ListBaselines(ctx context.Context) ([]model.Baseline, error) {
	var baselines []model.Baseline
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&baselines).Error; err != nil {
		return nil, apperr.Storage("failed to list baselines", err)
	}
	return baselines, nil
}

// ListBaselinesByProject 按创建时间倒序获取项目的基线数据
func (s *GormStore) ListBaselinesByProject(ctx context.Context, projectId string) ([]model.Baseline, error) {
	var baselines []model.Baseline
	if err := s.db.WithContext(ctx).Where("project_id = ?", projectId).
		Order("created_at DESC").Find(&baselines).Error; err != nil {
		return nil, apperr.Storage("failed to list baselines", err)
	}
	return baselines, nil
}

// CreateActivity 创建活动记录
func (s *GormStore) CreateActivity(ctx context.Context, activity *model.Activity) error {
	if err := s.db.WithContext(ctx).Create(activity).Error; err != nil {
		return apperr.Storage("failed to create activity", err)
	}
	return nil
}

// ListActivities 按创建时间倒序获取全部活动记录
func (s *GormStore) ListActivities(ctx context.Context) ([]model.Activity, error) {
	var activities []model.Activity
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&activities).Error; err != nil {
		return nil, apperr.Storage("failed to list activities", err)
	}
	return activities, nil
}

// ListActivitiesByProject 按创建时间倒序获取项目的活动记录
func (s *GormStore) ListActivitiesByProject(ctx context.Context, projectId string) ([]model.Activity, error) {
	var activities []model.Activity
	if err := s.db.WithContext(ctx).Where("project_id = ?", projectId).
		Order("created_at DESC").Find(&activities).Error; err != nil {
		return nil, apperr.Storage("failed to list activities", err)
	}
	return activities, nil
}

// CreateMRVRecord 创建MRV记录
func (s *GormStore) CreateMRVRecord(ctx context.Context, record *model.MRVRecord) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return apperr.Storage("failed to create mrv record", err)
	}
	return nil
}

// ListMRVRecords 按创建时间倒序获取全部MRV记录
func (s *GormStore) ListMRVRecords(ctx context.Context) ([]model.MRVRecord, error) {
	var records []model.MRVRecord
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, apperr.Storage("failed to list mrv records", err)
	}
	return records, nil
}

// ListMRVRecordsByProject 按创建时间倒序获取项目的MRV记录
func (s *GormStore) ListMRVRecordsByProject(ctx context.Context, projectId string) ([]model.MRVRecord, error) {
	var records []model.MRVRecord
	if err := s.db.WithContext(ctx).Where("project_id = ?", projectId).
		Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, apperr.Storage("failed to list mrv records", err)
	}
	return records, nil
}
