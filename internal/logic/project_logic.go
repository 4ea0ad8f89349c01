package logic

import (
	"context"
	"time"

	"github.com/bluecarbon/bcms/internal/apperr"
	"github.com/bluecarbon/bcms/internal/logger"
	"github.com/bluecarbon/bcms/internal/model"
	"github.com/bluecarbon/bcms/internal/store"
)

// ProjectLogic 项目业务逻辑
type ProjectLogic struct {
	store store.Store
}

// NewProjectLogic 创建项目业务逻辑
func NewProjectLogic(s store.Store) *ProjectLogic {
	return &ProjectLogic{store: s}
}

// CreateProject 创建项目
func (l *ProjectLogic) CreateProject(ctx context.Context, project *model.Project) error {
	// 验证项目数据
	if err := l.validateProject(project); err != nil {
		return err
	}

	// 设置默认值
	project.Status = model.ProjectStatusDraft
	project.CreatedAt = time.Now()

	if err := l.store.CreateProject(ctx, project); err != nil {
		return err
	}

	logger.Info("Created project %s (%s)", project.ProjectId, project.ProjectName)
	return nil
}

// GetProjects 获取项目列表
func (l *ProjectLogic) GetProjects(ctx context.Context) ([]model.Project, error) {
	return l.store.ListProjects(ctx)
}

// GetProject 获取项目详情
func (l *ProjectLogic) GetProject(ctx context.Context, projectId string) (*model.Project, error) {
	return l.store.GetProject(ctx, projectId)
}

// SubmitProject 将项目从草稿置为已提交。重复调用等价。
func (l *ProjectLogic) SubmitProject(ctx context.Context, projectId string) (*model.Project, error) {
	patch := map[string]interface{}{
		"status": string(model.ProjectStatusSubmitted),
	}

	project, err := l.store.UpdateProject(ctx, projectId, patch)
	if err != nil {
		return nil, err
	}

	logger.Info("Project %s submitted", projectId)
	return project, nil
}

// validateProject 验证项目数据
func (l *ProjectLogic) validateProject(project *model.Project) error {
	if project.ProjectId == "" {
		return apperr.Validation("missing projectId")
	}
	if project.ProjectName == "" {
		return apperr.Validation("missing projectName")
	}
	if project.Latitude == "" || project.Longitude == "" {
		return apperr.Validation("missing coordinates")
	}
	if project.EcosystemType == "" {
		return apperr.Validation("missing ecosystemType")
	}
	if project.ImplementingAgency == "" {
		return apperr.Validation("missing implementingAgency")
	}
	return nil
}
