package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/blues/cfe/internal/campaign"
	"github.com/blues/cfe/internal/model"
)

// Lookup failures surfaced to the handler layer.
var (
	ErrProjectNotFound = errors.New("project not found")
)

// Permalinks that would clash with routes.
var reservedPermalinks = map[string]bool{
	"users":    true,
	"projects": true,
	"channels": true,
}

// ProjectLogic 项目业务逻辑
type ProjectLogic struct {
	db     *gorm.DB
	engine *campaign.Engine
}

// NewProjectLogic 创建项目业务逻辑
func NewProjectLogic(db *gorm.DB, engine *campaign.Engine) *ProjectLogic {
	return &ProjectLogic{db: db, engine: engine}
}

// CreateProject 创建项目
func (p *ProjectLogic) CreateProject(project *model.Project) error {
	if err := p.validateProject(project); err != nil {
		return err
	}

	// New projects always start as drafts; the operator launches them.
	project.State = model.ProjectStateDraft
	if project.CampaignType == "" {
		project.CampaignType = model.CampaignAllOrNone
	}

	if err := p.db.Create(project).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// FindByPermalink 按永久链接查找项目，已删除项目视为不存在
func (p *ProjectLogic) FindByPermalink(permalink string) (*model.Project, error) {
	var project model.Project
	err := p.db.Where("permalink = ? AND state <> ?", permalink, model.ProjectStateDeleted).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return &project, nil
}

// GetVisibleProjects 获取对外可见的项目列表
//
// filter narrows the visible set: "recent" keeps campaigns that went online
// within the trailing window, "expiring" keeps live campaigns near their
// deadline. Filters are applied with the same engine predicates the state
// sweep uses, so listings never disagree with transitions.
func (p *ProjectLogic) GetVisibleProjects(filter string, page, pageSize int) ([]model.Project, int64, error) {
	query := p.db.Model(&model.Project{}).
		Where("state NOT IN ?", []model.ProjectState{
			model.ProjectStateDraft,
			model.ProjectStateRejected,
			model.ProjectStateDeleted,
		}).
		Order("id")

	var projects []model.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	now := time.Now()
	switch filter {
	case "recent":
		projects = p.filterProjects(projects, func(project model.Project) bool {
			return p.engine.Recent(project, now)
		})
	case "expiring":
		projects = p.filterProjects(projects, func(project model.Project) bool {
			return p.engine.Expiring(project, now)
		})
	}

	total := int64(len(projects))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	start := (page - 1) * pageSize
	if start >= len(projects) {
		return []model.Project{}, total, nil
	}
	end := start + pageSize
	if end > len(projects) {
		end = len(projects)
	}
	return projects[start:end], total, nil
}

func (p *ProjectLogic) filterProjects(projects []model.Project, keep func(model.Project) bool) []model.Project {
	filtered := make([]model.Project, 0, len(projects))
	for _, project := range projects {
		if keep(project) {
			filtered = append(filtered, project)
		}
	}
	return filtered
}

// ProjectStats 项目统计信息，由同一次读快照计算
type ProjectStats struct {
	ProjectID         uint               `json:"project_id"`
	State             model.ProjectState `json:"state"`
	DerivedState      model.ProjectState `json:"derived_state"`
	Goal              decimal.Decimal    `json:"goal"`
	Pledged           decimal.Decimal    `json:"pledged"`
	PledgedAndWaiting decimal.Decimal    `json:"pledged_and_waiting"`
	Progress          int                `json:"progress"`
	ReachedGoal       bool               `json:"reached_goal"`
	TotalContribs     int64              `json:"total_contributions"`
	PaymentServiceFee decimal.Decimal    `json:"total_payment_service_fee"`
	ExpiresAt         *time.Time         `json:"expires_at"`
	Expired           bool               `json:"expired"`
	Expiring          bool               `json:"expiring"`
}

// GetProjectStats 获取项目统计信息
//
// The project, its contributions and its rollup are loaded together so
// every derived number comes from one consistent snapshot.
func (p *ProjectLogic) GetProjectStats(permalink string) (*ProjectStats, error) {
	var project model.Project
	err := p.db.Preload("Contributions").Preload("ProjectTotal").
		Where("permalink = ? AND state <> ?", permalink, model.ProjectStateDeleted).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project snapshot: %w", err)
	}

	now := time.Now()
	ledger := campaign.Ledger{
		Contributions: project.Contributions,
		Total:         project.ProjectTotal,
	}

	return &ProjectStats{
		ProjectID:         project.ID,
		State:             project.State,
		DerivedState:      p.engine.Evaluate(project, ledger, now),
		Goal:              project.Goal,
		Pledged:           ledger.Pledged(),
		PledgedAndWaiting: ledger.PledgedAndWaiting(),
		Progress:          p.engine.Progress(project, ledger),
		ReachedGoal:       p.engine.ReachedGoal(project, ledger),
		TotalContribs:     ledger.TotalContributions(),
		PaymentServiceFee: ledger.TotalPaymentServiceFee(),
		ExpiresAt:         p.engine.ExpiresAt(project),
		Expired:           p.engine.Expired(project, now),
		Expiring:          p.engine.Expiring(project, now),
	}, nil
}

// LaunchProject 上线项目
//
// Launching moves a draft online. When no online date was scheduled the
// campaign goes online immediately; a future date puts it in soon until
// the date arrives.
func (p *ProjectLogic) LaunchProject(permalink string, onlineDays int) (*model.Project, error) {
	project, err := p.FindByPermalink(permalink)
	if err != nil {
		return nil, err
	}
	if project.State != model.ProjectStateDraft && project.State != model.ProjectStateSoon {
		return nil, fmt.Errorf("project %s cannot be launched from state %s", permalink, project.State)
	}
	if onlineDays != 0 {
		project.OnlineDays = onlineDays
	}

	now := time.Now()
	if project.OnlineDate == nil {
		project.OnlineDate = &now
	}
	if project.OnlineDate.After(now) {
		project.State = model.ProjectStateSoon
	} else {
		project.State = model.ProjectStateOnline
	}

	updates := map[string]interface{}{
		"online_date": project.OnlineDate,
		"online_days": project.OnlineDays,
		"state":       project.State,
	}
	if err := p.db.Model(project).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to launch project: %w", err)
	}
	return project, nil
}

// RejectProject 驳回项目
func (p *ProjectLogic) RejectProject(permalink string) error {
	return p.setExternalState(permalink, model.ProjectStateRejected, model.ProjectStateDraft)
}

// DeleteProject 删除项目（状态软删除，任何状态可删）
func (p *ProjectLogic) DeleteProject(permalink string) error {
	return p.setExternalState(permalink, model.ProjectStateDeleted)
}

func (p *ProjectLogic) setExternalState(permalink string, state model.ProjectState, from ...model.ProjectState) error {
	project, err := p.FindByPermalink(permalink)
	if err != nil {
		return err
	}
	if len(from) > 0 {
		allowed := false
		for _, s := range from {
			if project.State == s {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("project %s cannot move to %s from state %s", permalink, state, project.State)
		}
	}
	if err := p.db.Model(project).Update("state", state).Error; err != nil {
		return fmt.Errorf("failed to update project state: %w", err)
	}
	return nil
}

func (p *ProjectLogic) validateProject(project *model.Project) error {
	if project.Name == "" {
		return errors.New("project name is required")
	}
	if project.Permalink == "" {
		return errors.New("project permalink is required")
	}
	if reservedPermalinks[project.Permalink] {
		return fmt.Errorf("permalink %q is reserved", project.Permalink)
	}
	if project.Goal.Sign() <= 0 {
		return errors.New("project goal must be positive")
	}
	if project.CampaignType != "" && !project.CampaignType.Valid() {
		return fmt.Errorf("unknown campaign type %q", project.CampaignType)
	}
	return nil
}
