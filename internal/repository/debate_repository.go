package repository

import (
	"fmt"

	"manjang_web/internal/models"
	"manjang_web/internal/storage"
)

type DebateRepository interface {
	Create(debate *models.Debate) error
	FindByID(id string) (*models.Debate, error)
	FindAll(year *int) ([]models.Debate, error)
	SetWinner(id string, side models.Side) (int64, error)

	FindParticipant(debateID, userID string) (*models.DebateParticipant, error)
	FindParticipantsByUserIDs(debateID string, userIDs []string) ([]models.DebateParticipant, error)
	CreateParticipant(participant *models.DebateParticipant) error
	UpdateParticipantSide(debateID, userID string, side models.Side) (*models.DebateParticipant, error)
	DeleteParticipant(debateID, userID string) (int64, error)
}

type debateRepository struct {
	db *storage.PostgresDB
}

func NewDebateRepository(db *storage.PostgresDB) DebateRepository {
	return &debateRepository{db: db}
}

func (r *debateRepository) Create(debate *models.Debate) error {
	return r.db.Create(debate).Error
}

func (r *debateRepository) FindByID(id string) (*models.Debate, error) {
	var debate models.Debate
	err := r.db.Where("id = ?", id).First(&debate).Error
	if err != nil {
		return nil, err
	}
	return &debate, nil
}

// FindAll 查詢所有辯論，year 不為 nil 時限定該年度（含年初與年末）
// 依辯論日期由新到舊排序
func (r *debateRepository) FindAll(year *int) ([]models.Debate, error) {
	query := r.db.Model(&models.Debate{})
	if year != nil {
		query = query.
			Where("debate_date >= ?", fmt.Sprintf("%d-01-01", *year)).
			Where("debate_date <= ?", fmt.Sprintf("%d-12-31", *year))
	}

	var debates []models.Debate
	err := query.Order("debate_date DESC").Find(&debates).Error
	return debates, err
}

// SetWinner 更新勝方並回傳受影響的列數，0 表示辯論不存在
func (r *debateRepository) SetWinner(id string, side models.Side) (int64, error) {
	result := r.db.Model(&models.Debate{}).Where("id = ?", id).Update("winner_side", side)
	return result.RowsAffected, result.Error
}

func (r *debateRepository) FindParticipant(debateID, userID string) (*models.DebateParticipant, error) {
	var participant models.DebateParticipant
	err := r.db.Where("debate_id = ? AND user_id = ?", debateID, userID).First(&participant).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *debateRepository) FindParticipantsByUserIDs(debateID string, userIDs []string) ([]models.DebateParticipant, error) {
	var participants []models.DebateParticipant
	err := r.db.
		Where("debate_id = ? AND user_id IN ?", debateID, userIDs).
		Find(&participants).Error
	return participants, err
}

func (r *debateRepository) CreateParticipant(participant *models.DebateParticipant) error {
	return r.db.Create(participant).Error
}

func (r *debateRepository) UpdateParticipantSide(debateID, userID string, side models.Side) (*models.DebateParticipant, error) {
	err := r.db.Model(&models.DebateParticipant{}).
		Where("debate_id = ? AND user_id = ?", debateID, userID).
		Update("side", side).Error
	if err != nil {
		return nil, err
	}
	return r.FindParticipant(debateID, userID)
}

// DeleteParticipant 回傳受影響的列數，0 表示沒有符合的參賽者
func (r *debateRepository) DeleteParticipant(debateID, userID string) (int64, error) {
	result := r.db.Where("debate_id = ? AND user_id = ?", debateID, userID).
		Delete(&models.DebateParticipant{})
	return result.RowsAffected, result.Error
}
