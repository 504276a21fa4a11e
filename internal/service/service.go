package service

import (
	"manjang_web/internal/repository"
	"manjang_web/pkg/config"
)

type Services struct {
	User        *UserService
	Debate      *DebateService
	Reservation *ReservationService
	Record      *RecordService
	Naver       *NaverService
	Board       *ReservationBoard
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	board := NewReservationBoard()

	userService := NewUserService(repos.User)
	debateService := NewDebateService(repos.Debate)
	reservationService := NewReservationService(repos.Reservation, repos.Debate, board, cfg.Reservation.StrictOverlap)
	recordService := NewRecordService(repos.Record)
	naverService := NewNaverService(cfg, repos.User)

	return &Services{
		User:        userService,
		Debate:      debateService,
		Reservation: reservationService,
		Record:      recordService,
		Naver:       naverService,
		Board:       board,
	}
}
