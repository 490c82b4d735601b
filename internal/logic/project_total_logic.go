package logic

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/blues/cfe/internal/model"
)

// ProjectTotalLogic 筹款汇总物化逻辑
type ProjectTotalLogic struct {
	db *gorm.DB
}

// NewProjectTotalLogic 创建筹款汇总逻辑
func NewProjectTotalLogic(db *gorm.DB) *ProjectTotalLogic {
	return &ProjectTotalLogic{db: db}
}

// RefreshProject 重建单个项目的筹款汇总
func (t *ProjectTotalLogic) RefreshProject(projectID uint) error {
	var agg struct {
		Pledged            decimal.Decimal
		ServiceFee         decimal.Decimal
		TotalContributions int64
	}
	err := t.db.Model(&model.Contribution{}).
		Select("COALESCE(SUM(value), 0) AS pledged, COALESCE(SUM(payment_service_fee), 0) AS service_fee, COUNT(*) AS total_contributions").
		Where("project_id = ? AND state = ?", projectID, model.ContributionConfirmed).
		Scan(&agg).Error
	if err != nil {
		return fmt.Errorf("failed to aggregate contributions: %w", err)
	}

	var total model.ProjectTotal
	err = t.db.Where("project_id = ?", projectID).First(&total).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		total = model.ProjectTotal{
			ProjectID:              projectID,
			Pledged:                agg.Pledged,
			TotalPaymentServiceFee: agg.ServiceFee,
			TotalContributions:     agg.TotalContributions,
		}
		if err := t.db.Create(&total).Error; err != nil {
			return fmt.Errorf("failed to create project total: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("failed to load project total: %w", err)
	}

	updates := map[string]interface{}{
		"pledged":                   agg.Pledged,
		"total_payment_service_fee": agg.ServiceFee,
		"total_contributions":       agg.TotalContributions,
	}
	if err := t.db.Model(&total).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update project total: %w", err)
	}
	return nil
}

// RefreshAll 重建所有有出资记录项目的筹款汇总
//
// Returns how many projects were refreshed.
func (t *ProjectTotalLogic) RefreshAll() (int, error) {
	var projectIDs []uint
	err := t.db.Model(&model.Contribution{}).
		Distinct("project_id").
		Pluck("project_id", &projectIDs).Error
	if err != nil {
		return 0, fmt.Errorf("failed to list projects with contributions: %w", err)
	}

	refreshed := 0
	for _, id := range projectIDs {
		if err := t.RefreshProject(id); err != nil {
			return refreshed, err
		}
		refreshed++
	}
	return refreshed, nil
}
