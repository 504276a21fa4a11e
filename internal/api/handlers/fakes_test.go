package handlers

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"manjang_web/internal/models"
	"manjang_web/internal/repository"
)

// 測試用的記憶體版 repositories，handler 測試走真實的 service 層

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if _, ok := f.users[user.Email]; ok {
		return errors.New("duplicate email")
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) UpdateSid(email, sid string, name *string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	user.Sid = &sid
	if name != nil {
		user.Name = name
	}
	return user, nil
}

type fakeDebateRepo struct {
	debates      map[string]*models.Debate
	participants []*models.DebateParticipant
	nextID       uint
}

func newFakeDebateRepo() *fakeDebateRepo {
	return &fakeDebateRepo{debates: make(map[string]*models.Debate)}
}

func (f *fakeDebateRepo) Create(debate *models.Debate) error {
	if debate.ID == "" {
		debate.ID = uuid.NewString()
	}
	f.debates[debate.ID] = debate
	return nil
}

func (f *fakeDebateRepo) FindByID(id string) (*models.Debate, error) {
	debate, ok := f.debates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return debate, nil
}

func (f *fakeDebateRepo) FindAll(year *int) ([]models.Debate, error) {
	var debates []models.Debate
	for _, d := range f.debates {
		if year != nil && d.DebateDate.Year() != *year {
			continue
		}
		debates = append(debates, *d)
	}
	return debates, nil
}

func (f *fakeDebateRepo) SetWinner(id string, side models.Side) (int64, error) {
	debate, ok := f.debates[id]
	if !ok {
		return 0, nil
	}
	debate.WinnerSide = &side
	return 1, nil
}

func (f *fakeDebateRepo) FindParticipant(debateID, userID string) (*models.DebateParticipant, error) {
	for _, p := range f.participants {
		if p.DebateID == debateID && p.UserID == userID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDebateRepo) FindParticipantsByUserIDs(debateID string, userIDs []string) ([]models.DebateParticipant, error) {
	var result []models.DebateParticipant
	for _, p := range f.participants {
		if p.DebateID != debateID {
			continue
		}
		for _, id := range userIDs {
			if p.UserID == id {
				result = append(result, *p)
				break
			}
		}
	}
	return result, nil
}

func (f *fakeDebateRepo) CreateParticipant(participant *models.DebateParticipant) error {
	f.nextID++
	participant.ID = f.nextID
	f.participants = append(f.participants, participant)
	return nil
}

func (f *fakeDebateRepo) UpdateParticipantSide(debateID, userID string, side models.Side) (*models.DebateParticipant, error) {
	for _, p := range f.participants {
		if p.DebateID == debateID && p.UserID == userID {
			p.Side = side
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDebateRepo) DeleteParticipant(debateID, userID string) (int64, error) {
	for i, p := range f.participants {
		if p.DebateID == debateID && p.UserID == userID {
			f.participants = append(f.participants[:i], f.participants[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeReservationRepo struct {
	reservations []*models.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{}
}

func (f *fakeReservationRepo) Create(reservation *models.Reservation) error {
	if reservation.ID == "" {
		reservation.ID = uuid.NewString()
	}
	f.reservations = append(f.reservations, reservation)
	return nil
}

func (f *fakeReservationRepo) Find(filter repository.ReservationFilter) ([]models.Reservation, error) {
	var result []models.Reservation
	for _, r := range f.reservations {
		if filter.Start != nil && r.EndsAt.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && r.StartsAt.After(*filter.End) {
			continue
		}
		result = append(result, *r)
	}
	return result, nil
}

func (f *fakeReservationRepo) Delete(id string) (int64, error) {
	for i, r := range f.reservations {
		if r.ID == id {
			f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeReservationRepo) FindOverlapping(debateID string, startsAt, endsAt time.Time) ([]models.Reservation, error) {
	var result []models.Reservation
	for _, r := range f.reservations {
		if r.DebateID == nil || *r.DebateID != debateID {
			continue
		}
		if r.StartsAt.Before(endsAt) && r.EndsAt.After(startsAt) {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (f *fakeReservationRepo) HasOverlap(startsAt, endsAt time.Time) (bool, error) {
	for _, r := range f.reservations {
		if r.StartsAt.Before(endsAt) && r.EndsAt.After(startsAt) {
			return true, nil
		}
	}
	return false, nil
}

type fakeRecordRepo struct {
	records []*models.DebateRecord

	lastSearch   string
	lastCategory string
	lastSort     string
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{}
}

func (f *fakeRecordRepo) List(search, category, sort string) ([]models.DebateRecord, error) {
	f.lastSearch = search
	f.lastCategory = category
	f.lastSort = sort

	var result []models.DebateRecord
	for _, r := range f.records {
		result = append(result, *r)
	}
	return result, nil
}

func (f *fakeRecordRepo) Create(record *models.DebateRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeRecordRepo) Update(id string, record *models.DebateRecord) (int64, error) {
	for i, r := range f.records {
		if r.ID == id {
			record.ID = id
			f.records[i] = record
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeRecordRepo) Delete(id string) (int64, error) {
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
