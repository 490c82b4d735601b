package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectTotal 项目筹款汇总（物化聚合）
//
// A row may not exist yet for a given project; readers must treat the
// missing row as all-zero, never as an error.
type ProjectTotal struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectID uint `json:"project_id" gorm:"uniqueIndex;not null"`

	Pledged                decimal.Decimal `json:"pledged" gorm:"type:decimal(15,2);default:0"`
	TotalPaymentServiceFee decimal.Decimal `json:"total_payment_service_fee" gorm:"type:decimal(15,2);default:0"`
	TotalContributions     int64           `json:"total_contributions" gorm:"default:0"`
}

// TableName 自定义表名
func (ProjectTotal) TableName() string {
	return "project_totals"
}
