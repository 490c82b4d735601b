package model

import (
	"time"
)

// Channel 白标渠道，项目可归属于一个渠道
//
// Channel data is owned by the white-label layer; this service only reads
// the association to pick notification keys.
type Channel struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name      string `json:"name" gorm:"not null"`
	Permalink string `json:"permalink" gorm:"uniqueIndex;not null"`
}

// TableName 自定义表名
func (Channel) TableName() string {
	return "channels"
}
