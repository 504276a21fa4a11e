package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"manjang_web/internal/models"
	"manjang_web/internal/repository"
)

type DebateService struct {
	debateRepo repository.DebateRepository
}

func NewDebateService(debateRepo repository.DebateRepository) *DebateService {
	return &DebateService{debateRepo: debateRepo}
}

// List 查詢辯論列表，year 不為 nil 時只回傳該年度的辯論
func (s *DebateService) List(year *int) ([]models.Debate, error) {
	return s.debateRepo.FindAll(year)
}

func (s *DebateService) Create(topicText string, debateDate models.DateOnly, notes *string) (*models.Debate, error) {
	debate := &models.Debate{
		TopicText:  topicText,
		DebateDate: debateDate,
		Notes:      notes,
	}
	if err := s.debateRepo.Create(debate); err != nil {
		return nil, err
	}
	if debate.ID == "" {
		return nil, fmt.Errorf("%w: create debate", ErrUpstream)
	}
	return debate, nil
}

func (s *DebateService) Get(id string) (*models.Debate, error) {
	debate, err := s.debateRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: debate %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return debate, nil
}

// AddParticipant 將用戶加入辯論
// 同一組 (debate_id, user_id) 已存在時改為更新立場，不會新增第二筆
func (s *DebateService) AddParticipant(debateID string, input *models.DebateParticipant) (*models.DebateParticipant, error) {
	if input.DebateID != debateID {
		return nil, fmt.Errorf("%w: debate_id mismatch", ErrValidation)
	}
	if !input.Side.Valid() {
		return nil, fmt.Errorf("%w: side 必須是 pro 或 con", ErrValidation)
	}

	_, err := s.debateRepo.FindParticipant(debateID, input.UserID)
	if err == nil {
		return s.debateRepo.UpdateParticipantSide(debateID, input.UserID, input.Side)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	participant := &models.DebateParticipant{
		DebateID: debateID,
		UserID:   input.UserID,
		Side:     input.Side,
	}
	if err := s.debateRepo.CreateParticipant(participant); err != nil {
		return nil, err
	}
	return participant, nil
}

func (s *DebateService) RemoveParticipant(debateID, userID string) error {
	rows, err := s.debateRepo.DeleteParticipant(debateID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: participant", ErrNotFound)
	}
	return nil
}

// SetWinner 設定辯論的勝方並回傳更新後的辯論
func (s *DebateService) SetWinner(debateID string, side models.Side) (*models.Debate, error) {
	if !side.Valid() {
		return nil, fmt.Errorf("%w: winner_side 必須是 pro 或 con", ErrValidation)
	}

	rows, err := s.debateRepo.SetWinner(debateID, side)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: debate %s", ErrNotFound, debateID)
	}
	return s.Get(debateID)
}
