package scheduler

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"

	"github.com/blues/cfe/internal/config"
	"github.com/blues/cfe/internal/logger"
	"github.com/blues/cfe/internal/logic"
)

// ProjectTotalJob 筹款汇总物化任务
type ProjectTotalJob struct {
	db     *gorm.DB
	config *config.Config
}

// NewProjectTotalJob 创建筹款汇总物化任务
func NewProjectTotalJob(db *gorm.DB, cfg *config.Config) *ProjectTotalJob {
	return &ProjectTotalJob{db: db, config: cfg}
}

// GetName 获取任务名称
func (j *ProjectTotalJob) GetName() string {
	return "project_total_refresh"
}

// GetSchedule 获取调度配置
func (j *ProjectTotalJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.TotalInterval) * time.Second)
}

// Execute 执行任务
func (j *ProjectTotalJob) Execute() {
	logger.Info("Starting project total refresh")

	refreshed, err := logic.NewProjectTotalLogic(j.db).RefreshAll()
	if err != nil {
		logger.Error("Project total refresh failed after %d projects: %v", refreshed, err)
		return
	}

	logger.Info("Project total refresh completed. Refreshed %d projects", refreshed)
}
