package logic

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/blues/cfe/internal/campaign"
	"github.com/blues/cfe/internal/model"
)

// PayoutLogic 打款业务逻辑
type PayoutLogic struct {
	db     *gorm.DB
	engine *campaign.Engine
}

// NewPayoutLogic 创建打款业务逻辑
func NewPayoutLogic(db *gorm.DB, engine *campaign.Engine) *PayoutLogic {
	return &PayoutLogic{db: db, engine: engine}
}

// RecordPayout 记录一笔打款，金额为负表示冲正
func (p *PayoutLogic) RecordPayout(payout *model.Payout) error {
	if payout.Value.IsZero() {
		return errors.New("payout value must be non-zero")
	}

	var project model.Project
	if err := p.db.First(&project, payout.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to load project: %w", err)
	}

	if err := p.db.Create(payout).Error; err != nil {
		return fmt.Errorf("failed to record payout: %w", err)
	}
	return nil
}

// Reconciliation 项目打款对账结果
type Reconciliation struct {
	ProjectID uint            `json:"project_id"`
	NetAmount decimal.Decimal `json:"net_amount"`
	PaidOut   decimal.Decimal `json:"paid_out"`
	Paid      bool            `json:"paid"`
}

// Reconcile 对账：净应付金额与已打款金额是否精确一致
//
// Recomputed from the contribution and payout rows on every call; the
// result is deliberately never cached.
func (p *PayoutLogic) Reconcile(permalink string) (*Reconciliation, error) {
	var project model.Project
	err := p.db.Preload("Contributions").Preload("Payouts").
		Where("permalink = ? AND state <> ?", permalink, model.ProjectStateDeleted).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project for reconciliation: %w", err)
	}

	return &Reconciliation{
		ProjectID: project.ID,
		NetAmount: p.engine.NetAmount(project.Contributions),
		PaidOut:   campaign.PaidOut(project.Payouts),
		Paid:      p.engine.Paid(project.Contributions, project.Payouts),
	}, nil
}
