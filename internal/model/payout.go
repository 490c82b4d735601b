package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payout 项目打款记录，金额为负数时表示冲正
type Payout struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectID uint            `json:"project_id" gorm:"not null;index"`
	Value     decimal.Decimal `json:"value" gorm:"type:decimal(15,2);not null" binding:"required"`

	// 关联
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

// TableName 自定义表名
func (Payout) TableName() string {
	return "payouts"
}
