package scheduler

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"

	"github.com/blues/cfe/internal/campaign"
	"github.com/blues/cfe/internal/config"
	"github.com/blues/cfe/internal/logger"
	"github.com/blues/cfe/internal/model"
)

// ProjectFinishJob 项目状态结转任务
//
// The engine only derives states; this sweep is the single writer that
// persists time-triggered transitions. It evaluates each candidate from
// one read snapshot, so a retried run reaches the same decision.
type ProjectFinishJob struct {
	db     *gorm.DB
	engine *campaign.Engine
	config *config.Config
}

// NewProjectFinishJob 创建项目状态结转任务
func NewProjectFinishJob(db *gorm.DB, engine *campaign.Engine, cfg *config.Config) *ProjectFinishJob {
	return &ProjectFinishJob{db: db, engine: engine, config: cfg}
}

// GetName 获取任务名称
func (j *ProjectFinishJob) GetName() string {
	return "project_finish"
}

// GetSchedule 获取调度配置
func (j *ProjectFinishJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.FinishInterval) * time.Second)
}

// Execute 执行任务
func (j *ProjectFinishJob) Execute() {
	logger.Info("Starting project finish sweep")

	now := time.Now()

	// Only states the time tier owns can be finished here; soon->online is
	// also swept so a scheduled launch date takes effect without a manual
	// step.
	var projects []model.Project
	err := j.db.Preload("Contributions").Preload("ProjectTotal").
		Where("state IN ?", []model.ProjectState{
			model.ProjectStateSoon,
			model.ProjectStateOnline,
			model.ProjectStateWaitingFunds,
		}).
		Find(&projects).Error
	if err != nil {
		logger.Error("Failed to fetch projects for finish sweep: %v", err)
		return
	}

	updatedCount := 0

	for _, project := range projects {
		ledger := campaign.Ledger{
			Contributions: project.Contributions,
			Total:         project.ProjectTotal,
		}
		prev := project.State
		next := j.engine.Evaluate(project, ledger, now)
		if next == prev {
			continue
		}

		if err := j.db.Model(&project).Update("state", next).Error; err != nil {
			logger.Error("Failed to update project %d state: %v", project.ID, err)
			continue
		}

		logger.Info("Updated project %d state from %s to %s", project.ID, prev, next)
		updatedCount++
	}

	logger.Info("Project finish sweep completed. Updated %d projects", updatedCount)
}
