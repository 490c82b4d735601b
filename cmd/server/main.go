package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/blues/cfe/internal/campaign"
	"github.com/blues/cfe/internal/config"
	"github.com/blues/cfe/internal/database"
	"github.com/blues/cfe/internal/logger"
	"github.com/blues/cfe/internal/router"
	"github.com/blues/cfe/internal/scheduler"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	initLogger(cfg.Log)
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// 初始化众筹引擎
	engine := newEngine(cfg.Campaign)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(db, engine, cfg)

	// 启动定时任务
	manager := scheduler.Start(db, engine, cfg)
	defer manager.Stop()

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}

// newEngine 按配置构建众筹引擎
func newEngine(cfg config.CampaignConfig) *campaign.Engine {
	location := time.Local
	if cfg.Timezone != "" && cfg.Timezone != "Local" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			logger.Fatal("Invalid campaign timezone %q: %v", cfg.Timezone, err)
		}
		location = loc
	}

	return campaign.New(campaign.Settings{
		Location:       location,
		ExpiringWindow: time.Duration(cfg.ExpiringDays) * 24 * time.Hour,
		RecentWindow:   time.Duration(cfg.RecentDays) * 24 * time.Hour,
		WaitWindow:     time.Duration(cfg.WaitDays) * 24 * time.Hour,
		PlatformFee:    decimal.NewFromFloat(cfg.PlatformFee),
	})
}

// initLogger 按配置初始化默认日志器
func initLogger(cfg config.LogConfig) {
	level := logger.ParseLogLevel(cfg.Level)

	if cfg.Output == "file" && cfg.File != "" {
		l, err := logger.NewWithFileRotation(level, cfg.File)
		if err != nil {
			logger.Fatal("Failed to initialize file logger: %v", err)
		}
		logger.SetDefaultLogger(l)
		return
	}

	l, err := logger.New(level)
	if err != nil {
		logger.Fatal("Failed to initialize logger: %v", err)
	}
	logger.SetDefaultLogger(l)
}
