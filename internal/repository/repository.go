package repository

import "manjang_web/internal/storage"

type Repositories struct {
	User        UserRepository
	Debate      DebateRepository
	Reservation ReservationRepository
	Record      RecordRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Debate:      NewDebateRepository(db),
		Reservation: NewReservationRepository(db),
		Record:      NewRecordRepository(db),
	}
}
