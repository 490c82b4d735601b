package scheduler

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"

	"github.com/blues/cfe/internal/campaign"
	"github.com/blues/cfe/internal/config"
	"github.com/blues/cfe/internal/logger"
	"github.com/blues/cfe/internal/logic"
)

// ContributionSweepJob 失效超时待确认出资的任务
type ContributionSweepJob struct {
	db     *gorm.DB
	engine *campaign.Engine
	config *config.Config
}

// NewContributionSweepJob 创建出资清理任务
func NewContributionSweepJob(db *gorm.DB, engine *campaign.Engine, cfg *config.Config) *ContributionSweepJob {
	return &ContributionSweepJob{db: db, engine: engine, config: cfg}
}

// GetName 获取任务名称
func (j *ContributionSweepJob) GetName() string {
	return "contribution_sweep"
}

// GetSchedule 获取调度配置
func (j *ContributionSweepJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.SweepInterval) * time.Second)
}

// Execute 执行任务
func (j *ContributionSweepJob) Execute() {
	logger.Info("Starting contribution sweep")

	swept, err := logic.NewContributionLogic(j.db, j.engine).SweepStale(time.Now())
	if err != nil {
		logger.Error("Contribution sweep failed: %v", err)
		return
	}

	logger.Info("Contribution sweep completed. Invalidated %d contributions", swept)
}
