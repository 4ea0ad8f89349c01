package scheduler

import (
	"context"
	"time"

	"github.com/bluecarbon/bcms/internal/config"
	"github.com/bluecarbon/bcms/internal/logger"
	"github.com/bluecarbon/bcms/internal/store"
	"github.com/go-co-op/gocron/v2"
)

// CarbonStockJob 周期性把各项目基线数据的碳储量汇总回填到项目上
type CarbonStockJob struct {
	store  store.Store
	config *config.Config
}

// NewCarbonStockJob 创建碳储量汇总任务
func NewCarbonStockJob(s store.Store, cfg *config.Config) *CarbonStockJob {
	return &CarbonStockJob{
		store:  s,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *CarbonStockJob) GetName() string {
	return "carbon_stock_rollup"
}

// GetSchedule 获取调度配置
func (j *CarbonStockJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.Interval) * time.Second)
}

// Execute 执行任务
func (j *CarbonStockJob) Execute() {
	ctx := context.Background()

	projects, err := j.store.ListProjects(ctx)
	if err != nil {
		logger.Error("Carbon stock rollup: failed to list projects: %v", err)
		return
	}

	updated := 0
	for _, project := range projects {
		baselines, err := j.store.ListBaselinesByProject(ctx, project.ProjectId)
		if err != nil {
			logger.Error("Carbon stock rollup: failed to list baselines for %s: %v", project.ProjectId, err)
			continue
		}

		total := 0.0
		for _, baseline := range baselines {
			total += baseline.CarbonStock
		}
		if total == project.CarbonStock {
			continue
		}

		if _, err := j.store.UpdateProject(ctx, project.ProjectId, map[string]interface{}{
			"carbon_stock": total,
		}); err != nil {
			logger.Error("Carbon stock rollup: failed to update project %s: %v", project.ProjectId, err)
			continue
		}
		updated++
	}

	if updated > 0 {
		logger.Info("Carbon stock rollup updated %d projects", updated)
	}
}
