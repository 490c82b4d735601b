package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project 众筹项目模型
type Project struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Name      string `json:"name" gorm:"not null" binding:"required"`
	Permalink string `json:"permalink" gorm:"uniqueIndex;not null" binding:"required"`
	Headline  string `json:"headline" gorm:"size:140"`
	About     string `json:"about" gorm:"type:text"`
	Location  string `json:"location"`
	VideoURL  string `json:"video_url"`
	Category  string `json:"category"`

	// 众筹信息
	Goal         decimal.Decimal `json:"goal" gorm:"type:decimal(15,2);not null" binding:"required"`
	CampaignType CampaignType    `json:"campaign_type" gorm:"default:'all_or_none'"`

	// 时间信息
	OnlineDate *time.Time `json:"online_date"`
	OnlineDays int        `json:"online_days" gorm:"default:0"`

	// 状态
	State ProjectState `json:"state" gorm:"default:'draft'"`

	// 渠道归属（白标渠道，只读关联）
	ChannelID *int64 `json:"channel_id"`

	// 关联
	Contributions []Contribution `json:"contributions,omitempty" gorm:"foreignKey:ProjectID"`
	Payouts       []Payout       `json:"payouts,omitempty" gorm:"foreignKey:ProjectID"`
	ProjectTotal  *ProjectTotal  `json:"project_total,omitempty" gorm:"foreignKey:ProjectID"`
	Channel       *Channel       `json:"channel,omitempty" gorm:"foreignKey:ChannelID"`
}

// ProjectState 项目状态
type ProjectState string

const (
	ProjectStateDraft        ProjectState = "draft"         // 草稿
	ProjectStateSoon         ProjectState = "soon"          // 即将上线
	ProjectStateRejected     ProjectState = "rejected"      // 已驳回
	ProjectStateOnline       ProjectState = "online"        // 众筹中
	ProjectStateSuccessful   ProjectState = "successful"    // 成功
	ProjectStateWaitingFunds ProjectState = "waiting_funds" // 待确认到账
	ProjectStateFailed       ProjectState = "failed"        // 失败
	ProjectStateDeleted      ProjectState = "deleted"       // 已删除
)

// ProjectStates lists every state a project can be shown in, in lifecycle
// order. Deleted is excluded: deleted projects are invisible everywhere.
var ProjectStates = []ProjectState{
	ProjectStateDraft,
	ProjectStateSoon,
	ProjectStateRejected,
	ProjectStateOnline,
	ProjectStateSuccessful,
	ProjectStateWaitingFunds,
	ProjectStateFailed,
}

// Visible reports whether the state is shown to end users.
// Draft, rejected and deleted projects are hidden.
func (s ProjectState) Visible() bool {
	switch s {
	case ProjectStateDraft, ProjectStateRejected, ProjectStateDeleted:
		return false
	}
	return true
}

// Finished reports whether the state is a funding outcome that will not
// change again.
func (s ProjectState) Finished() bool {
	return s == ProjectStateSuccessful || s == ProjectStateFailed
}

// External reports whether the state is assigned by an operator rather than
// derived from dates and funding totals. External states are never
// overridden by the lifecycle derivation.
func (s ProjectState) External() bool {
	switch s {
	case ProjectStateDraft, ProjectStateRejected, ProjectStateDeleted:
		return true
	}
	return false
}

// CampaignType 众筹模式
type CampaignType string

const (
	CampaignAllOrNone CampaignType = "all_or_none" // 未达标全额退款
	CampaignFlexible  CampaignType = "flexible"    // 灵活模式，保留已筹金额
)

// CampaignTypes 支持的众筹模式
var CampaignTypes = []CampaignType{CampaignAllOrNone, CampaignFlexible}

// AllOrNone reports whether the campaign keeps funds only when the goal is
// reached.
func (t CampaignType) AllOrNone() bool {
	return t == CampaignAllOrNone
}

// Flexible reports whether the campaign keeps whatever was pledged.
func (t CampaignType) Flexible() bool {
	return t == CampaignFlexible
}

// Valid reports whether t is one of the supported campaign types.
func (t CampaignType) Valid() bool {
	return t == CampaignAllOrNone || t == CampaignFlexible
}

// TableName 自定义表名
func (Project) TableName() string {
	return "projects"
}
