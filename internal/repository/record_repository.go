package repository

import (
	"manjang_web/internal/models"
	"manjang_web/internal/storage"
)

type RecordRepository interface {
	List(search, category, sort string) ([]models.DebateRecord, error)
	Create(record *models.DebateRecord) error
	Update(id string, record *models.DebateRecord) (int64, error)
	Delete(id string) (int64, error)
}

type recordRepository struct {
	db *storage.PostgresDB
}

func NewRecordRepository(db *storage.PostgresDB) RecordRepository {
	return &recordRepository{db: db}
}

// List 查詢辯論紀錄
// search 比對標題、摘要（不分大小寫的子字串）以及參加者名單（完整比對）
func (r *recordRepository) List(search, category, sort string) ([]models.DebateRecord, error) {
	query := r.db.Model(&models.DebateRecord{})

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"title ILIKE ? OR summary ILIKE ? OR ? = ANY(participant_names)",
			like, like, search,
		)
	}

	var records []models.DebateRecord
	err := query.Order(orderForSort(sort)).Find(&records).Error
	return records, err
}

// orderForSort 將前端的排序參數轉換為 SQL 排序條件
// 無法辨識的值一律退回日期新到舊
func orderForSort(sort string) string {
	switch sort {
	case "date-asc":
		return "date ASC"
	case "participants-desc":
		return "participants DESC"
	case "title":
		return "title ASC"
	default:
		return "date DESC"
	}
}

func (r *recordRepository) Create(record *models.DebateRecord) error {
	return r.db.Create(record).Error
}

// Update 以 id 整筆覆寫紀錄，回傳受影響的列數
func (r *recordRepository) Update(id string, record *models.DebateRecord) (int64, error) {
	result := r.db.Model(&models.DebateRecord{}).
		Where("id = ?", id).
		Select("*").Omit("id").
		Updates(record)
	return result.RowsAffected, result.Error
}

func (r *recordRepository) Delete(id string) (int64, error) {
	result := r.db.Where("id = ?", id).Delete(&models.DebateRecord{})
	return result.RowsAffected, result.Error
}
