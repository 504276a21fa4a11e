package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reservation 表示單一共用場地的時段預約
// ReservedBy 為空時視為匿名預約，只留下顯示名稱
type Reservation struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	ReservedBy     *string   `gorm:"type:uuid" json:"reserved_by"`
	ReservedByName *string   `json:"reserved_by_name"`
	Title          *string   `json:"title"`
	StartsAt       time.Time `gorm:"not null" json:"starts_at"`
	EndsAt         time.Time `gorm:"not null" json:"ends_at"`
	DebateID       *string   `gorm:"type:uuid" json:"debate_id"` // 可選的辯論關聯
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
