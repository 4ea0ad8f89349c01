package scheduler

import (
	"github.com/bluecarbon/bcms/internal/config"
	"github.com/bluecarbon/bcms/internal/logger"
	"github.com/bluecarbon/bcms/internal/store"
	"github.com/go-co-op/gocron/v2"
)

// Manager 定时任务管理器
type Manager struct {
	scheduler gocron.Scheduler
	store     store.Store
	config    *config.Config
}

// NewManager 创建任务管理器
func NewManager(s store.Store, cfg *config.Config) (*Manager, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &Manager{
		scheduler: sched,
		store:     s,
		config:    cfg,
	}, nil
}

// Start 启动任务管理器
func Start(s store.Store, cfg *config.Config) *Manager {
	if !cfg.Scheduler.Enabled {
		logger.Info("Scheduler disabled")
		return nil
	}

	manager, err := NewManager(s, cfg)
	if err != nil {
		logger.Fatal("Failed to create scheduler: %v", err)
	}

	// 注册所有任务
	manager.RegisterJobs()

	// 启动调度器
	manager.scheduler.Start()

	logger.Info("Task manager started successfully")
	return manager
}

// RegisterJobs 注册所有任务
func (m *Manager) RegisterJobs() {
	// 注册碳储量汇总任务
	job := NewCarbonStockJob(m.store, m.config)
	_, err := m.scheduler.NewJob(
		job.GetSchedule(),
		gocron.NewTask(job.Execute),
		gocron.WithName(job.GetName()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		logger.Error("Failed to register job %s: %v", job.GetName(), err)
	}
}

// Stop 停止任务管理器
func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("Failed to shutdown scheduler: %v", err)
	}
	logger.Info("Task manager stopped")
}
