package logic

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/blues/cfe/internal/campaign"
	"github.com/blues/cfe/internal/model"
)

var ErrContributionNotFound = errors.New("contribution not found")

// ContributionLogic 出资业务逻辑
type ContributionLogic struct {
	db     *gorm.DB
	engine *campaign.Engine
}

// NewContributionLogic 创建出资业务逻辑
func NewContributionLogic(db *gorm.DB, engine *campaign.Engine) *ContributionLogic {
	return &ContributionLogic{db: db, engine: engine}
}

// CreateContribution 创建出资记录
//
// Contributions are only accepted while the campaign is online and its
// window has not expired.
func (c *ContributionLogic) CreateContribution(contribution *model.Contribution) error {
	if contribution.Value.Sign() <= 0 {
		return errors.New("contribution value must be positive")
	}

	var project model.Project
	if err := c.db.First(&project, contribution.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to load project: %w", err)
	}

	now := time.Now()
	if project.State != model.ProjectStateOnline || c.engine.Expired(project, now) {
		return fmt.Errorf("project %s is not accepting contributions", project.Permalink)
	}

	contribution.State = model.ContributionPending
	contribution.ConfirmedAt = nil

	if err := c.db.Create(contribution).Error; err != nil {
		return fmt.Errorf("failed to create contribution: %w", err)
	}
	return nil
}

// WaitConfirmation 标记出资为等待支付确认
func (c *ContributionLogic) WaitConfirmation(id uint) error {
	return c.transition(id, model.ContributionWaitingConfirmation, nil,
		model.ContributionPending)
}

// ConfirmContribution 确认出资到账
func (c *ContributionLogic) ConfirmContribution(id uint) error {
	now := time.Now()
	return c.transition(id, model.ContributionConfirmed, &now,
		model.ContributionPending, model.ContributionWaitingConfirmation)
}

// RequestRefund 申请退款，仅已确认出资可申请
func (c *ContributionLogic) RequestRefund(id uint) error {
	return c.transition(id, model.ContributionRequestedRefund, nil,
		model.ContributionConfirmed)
}

// RefundContribution 退款
func (c *ContributionLogic) RefundContribution(id uint) error {
	return c.transition(id, model.ContributionRefunded, nil,
		model.ContributionConfirmed, model.ContributionRequestedRefund)
}

// GetProjectContributions 获取项目出资列表
func (c *ContributionLogic) GetProjectContributions(projectID uint) ([]model.Contribution, error) {
	var contributions []model.Contribution
	err := c.db.Where("project_id = ?", projectID).Order("id").Find(&contributions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	return contributions, nil
}

// SweepStale 将超出确认宽限期的待确认出资置为失效
//
// Returns how many contributions were invalidated.
func (c *ContributionLogic) SweepStale(now time.Time) (int64, error) {
	cutoff := now.Add(-c.engine.Settings().WaitWindow)
	result := c.db.Model(&model.Contribution{}).
		Where("state = ? AND created_at < ?", model.ContributionWaitingConfirmation, cutoff).
		Update("state", model.ContributionInvalid)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to sweep stale contributions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// transition applies a guarded state change. Confirmed contributions are
// immutable except for the refund path, which the allowed-from sets encode.
func (c *ContributionLogic) transition(id uint, to model.ContributionState, confirmedAt *time.Time, from ...model.ContributionState) error {
	var contribution model.Contribution
	if err := c.db.First(&contribution, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContributionNotFound
		}
		return fmt.Errorf("failed to load contribution: %w", err)
	}

	allowed := false
	for _, s := range from {
		if contribution.State == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("contribution %d cannot move to %s from state %s", id, to, contribution.State)
	}

	updates := map[string]interface{}{"state": to}
	if confirmedAt != nil && contribution.ConfirmedAt == nil {
		updates["confirmed_at"] = confirmedAt
	}
	if err := c.db.Model(&contribution).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update contribution: %w", err)
	}
	return nil
}
