package main

import (
	"log"

	"github.com/bluecarbon/bcms/internal/config"
	"github.com/bluecarbon/bcms/internal/logger"
	"github.com/bluecarbon/bcms/internal/pinning"
	"github.com/bluecarbon/bcms/internal/router"
	"github.com/bluecarbon/bcms/internal/scheduler"
	"github.com/bluecarbon/bcms/internal/store"
	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	if err := logger.Init(cfg.Log); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 初始化存储后端
	s, err := store.Init(cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to initialize storage: %v", err)
	}

	// 初始化固定服务客户端
	pinner, err := pinning.Init(cfg.Pinning)
	if err != nil {
		logger.Fatal("Failed to initialize pinning client: %v", err)
	}

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(s, pinner, cfg)

	// 启动定时任务
	scheduler.Start(s, cfg)

	// 启动服务器
	logger.Info("Server starting on port %s, storage backend: %s", cfg.Server.Port, cfg.Storage.Backend)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
