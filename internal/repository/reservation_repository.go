package repository

import (
	"time"

	"manjang_web/internal/models"
	"manjang_web/internal/storage"
)

// ReservationFilter 描述預約列表的查詢條件，條件之間以 AND 組合
type ReservationFilter struct {
	Start *time.Time       // 預約結束時間需晚於或等於此時間
	End   *time.Time       // 預約開始時間需早於或等於此時間
	Date  *models.DateOnly // 限定整個預約落在這一天（UTC）
}

type ReservationRepository interface {
	Create(reservation *models.Reservation) error
	Find(filter ReservationFilter) ([]models.Reservation, error)
	Delete(id string) (int64, error)
	FindOverlapping(debateID string, startsAt, endsAt time.Time) ([]models.Reservation, error)
	HasOverlap(startsAt, endsAt time.Time) (bool, error)
}

type reservationRepository struct {
	db *storage.PostgresDB
}

func NewReservationRepository(db *storage.PostgresDB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(reservation *models.Reservation) error {
	return r.db.Create(reservation).Error
}

func (r *reservationRepository) Find(filter ReservationFilter) ([]models.Reservation, error) {
	query := r.db.Model(&models.Reservation{})

	if filter.Date != nil {
		dayStart := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(), 0, 0, 0, 0, time.UTC)
		dayEnd := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(), 23, 59, 59, 0, time.UTC)
		query = query.Where("starts_at >= ?", dayStart).Where("ends_at <= ?", dayEnd)
	}
	if filter.Start != nil {
		query = query.Where("ends_at >= ?", *filter.Start)
	}
	if filter.End != nil {
		query = query.Where("starts_at <= ?", *filter.End)
	}

	var reservations []models.Reservation
	err := query.Order("starts_at ASC").Find(&reservations).Error
	return reservations, err
}

// Delete 回傳受影響的列數，0 表示預約不存在
func (r *reservationRepository) Delete(id string) (int64, error) {
	result := r.db.Where("id = ?", id).Delete(&models.Reservation{})
	return result.RowsAffected, result.Error
}

// FindOverlapping 查詢同一場辯論中與指定時段重疊的預約
// 重疊採嚴格比較（< / >），首尾相接的預約不算重疊
func (r *reservationRepository) FindOverlapping(debateID string, startsAt, endsAt time.Time) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.
		Where("debate_id = ?", debateID).
		Where("starts_at < ? AND ends_at > ?", endsAt, startsAt).
		Find(&reservations).Error
	return reservations, err
}

// HasOverlap 檢查整個場地在指定時段內是否已有任何預約
func (r *reservationRepository) HasOverlap(startsAt, endsAt time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Reservation{}).
		Where("starts_at < ? AND ends_at > ?", endsAt, startsAt).
		Count(&count).Error
	return count > 0, err
}
