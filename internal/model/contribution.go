package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contribution 出资记录
type Contribution struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectID uint            `json:"project_id" gorm:"not null;index"`
	Value     decimal.Decimal `json:"value" gorm:"type:decimal(15,2);not null" binding:"required"`

	// 状态
	State ContributionState `json:"state" gorm:"default:'pending'"`

	// 支付信息
	PaymentMethod     string          `json:"payment_method"`
	PaymentServiceFee decimal.Decimal `json:"payment_service_fee" gorm:"type:decimal(15,2);default:0"`

	// ConfirmedAt is set exactly once, when the payment clears.
	ConfirmedAt *time.Time `json:"confirmed_at"`

	// 关联
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

// ContributionState 出资状态
type ContributionState string

const (
	ContributionPending             ContributionState = "pending"              // 已发起，未支付
	ContributionWaitingConfirmation ContributionState = "waiting_confirmation" // 等待支付确认
	ContributionConfirmed           ContributionState = "confirmed"            // 支付已确认
	ContributionRequestedRefund     ContributionState = "requested_refund"     // 已申请退款
	ContributionRefunded            ContributionState = "refunded"             // 已退款
	ContributionInvalid             ContributionState = "invalid"              // 超时失效
)

// Counted reports whether the contribution counts toward the pledged total.
func (s ContributionState) Counted() bool {
	return s == ContributionConfirmed
}

// TableName 自定义表名
func (Contribution) TableName() string {
	return "contributions"
}
