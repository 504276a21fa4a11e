package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// DebateRecord 表示舊版的辯論紀錄，與 Debate 資料表彼此獨立
// JSON 欄位名稱沿用舊前端的駝峰式命名
type DebateRecord struct {
	ID               string         `gorm:"type:uuid;primaryKey" json:"id"`
	Title            string         `gorm:"not null" json:"title"`
	Category         string         `gorm:"not null" json:"category"`
	Date             DateOnly       `gorm:"not null" json:"date"`
	Summary          string         `gorm:"type:text" json:"summary"`
	KeyPoints        pq.StringArray `gorm:"column:key_points;type:text[]" json:"keyPoints"`
	Conclusion       string         `gorm:"type:text" json:"conclusion"`
	Participants     int            `json:"participants"` // 參加人數
	ParticipantNames pq.StringArray `gorm:"column:participant_names;type:text[]" json:"participantNames"`
}

func (DebateRecord) TableName() string {
	return "records"
}

func (r *DebateRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
