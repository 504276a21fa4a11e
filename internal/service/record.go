package service

import (
	"fmt"

	"manjang_web/internal/models"
	"manjang_web/internal/repository"
)

type RecordService struct {
	recordRepo repository.RecordRepository
}

func NewRecordService(recordRepo repository.RecordRepository) *RecordService {
	return &RecordService{recordRepo: recordRepo}
}

func (s *RecordService) List(search, category, sort string) ([]models.DebateRecord, error) {
	return s.recordRepo.List(search, category, sort)
}

func (s *RecordService) Create(record *models.DebateRecord) (*models.DebateRecord, error) {
	if err := s.recordRepo.Create(record); err != nil {
		return nil, err
	}
	if record.ID == "" {
		return nil, fmt.Errorf("%w: create record", ErrUpstream)
	}
	return record, nil
}

// Update 以 id 整筆覆寫紀錄
func (s *RecordService) Update(id string, record *models.DebateRecord) (*models.DebateRecord, error) {
	rows, err := s.recordRepo.Update(id, record)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: record %s", ErrNotFound, id)
	}
	record.ID = id
	return record, nil
}

func (s *RecordService) Delete(id string) error {
	rows, err := s.recordRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: record %s", ErrNotFound, id)
	}
	return nil
}
