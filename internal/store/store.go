package store

import (
	"context"
	"fmt"

	"github.com/bluecarbon/bcms/internal/config"
	"github.com/bluecarbon/bcms/internal/model"
)

// Store 存储适配器接口，file与postgres两种实现可互换，
// 调用方只依赖本接口。patch的键为数据库列名（下划线风格）。
type Store interface {
	CreateSubmission(ctx context.Context, submission *model.Submission) error
	ListSubmissions(ctx context.Context) ([]model.Submission, error)
	GetSubmission(ctx context.Context, id string) (*model.Submission, error)
	UpdateSubmission(ctx context.Context, id string, patch map[string]interface{}) (*model.Submission, error)

	CreateProject(ctx context.Context, project *model.Project) error
	ListProjects(ctx context.Context) ([]model.Project, error)
	GetProject(ctx context.Context, projectId string) (*model.Project, error)
	UpdateProject(ctx context.Context, projectId string, patch map[string]interface{}) (*model.Project, error)

	CreateBaseline(ctx context.Context, baseline *model.Baseline) error
	ListBaselines(ctx context.Context) ([]model.Baseline, error)
	ListBaselinesByProject(ctx context.Context, projectId string) ([]model.Baseline, error)

	CreateActivity(ctx context.Context, activity *model.Activity) error
	ListActivities(ctx context.Context) ([]model.Activity, error)
	ListActivitiesByProject(ctx context.Context, projectId string) ([]model.Activity, error)

	CreateMRVRecord(ctx context.Context, record *model.MRVRecord) error
	ListMRVRecords(ctx context.Context) ([]model.MRVRecord, error)
	ListMRVRecordsByProject(ctx context.Context, projectId string) ([]model.MRVRecord, error)
}

// Init 根据配置选择存储后端
func Init(cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case "file":
		return NewFileStore(cfg.Dir)
	case "postgres":
		return NewGormStore(cfg.Postgres)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}
