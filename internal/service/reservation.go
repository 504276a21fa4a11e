package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"manjang_web/internal/models"
	"manjang_web/internal/repository"
)

type ReservationService struct {
	reservationRepo repository.ReservationRepository
	debateRepo      repository.DebateRepository
	board           *ReservationBoard
	strictOverlap   bool
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	debateRepo repository.DebateRepository,
	board *ReservationBoard,
	strictOverlap bool,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		debateRepo:      debateRepo,
		board:           board,
		strictOverlap:   strictOverlap,
	}
}

func (s *ReservationService) List(filter repository.ReservationFilter) ([]models.Reservation, error) {
	return s.reservationRepo.Find(filter)
}

// Create 建立預約並回傳對手警告旗標
// 時段重疊只作為警告，不阻擋建立；啟用 strictOverlap 時才會拒絕重疊的預約
func (s *ReservationService) Create(reservation *models.Reservation) (bool, error) {
	warnOpponent := false

	if reservation.DebateID != nil && reservation.ReservedBy != nil {
		warn, err := s.checkOpponentBooked(
			*reservation.DebateID, *reservation.ReservedBy,
			reservation.StartsAt, reservation.EndsAt,
		)
		if err != nil {
			return false, err
		}
		warnOpponent = warn
	}

	if s.strictOverlap {
		overlap, err := s.reservationRepo.HasOverlap(reservation.StartsAt, reservation.EndsAt)
		if err != nil {
			return false, err
		}
		if overlap {
			return false, fmt.Errorf("%w: %s ~ %s",
				ErrConflict,
				reservation.StartsAt.Format(time.RFC3339),
				reservation.EndsAt.Format(time.RFC3339))
		}
	}

	if err := s.reservationRepo.Create(reservation); err != nil {
		return false, err
	}

	s.board.Broadcast(models.NewReservationCreatedEvent(reservation))
	return warnOpponent, nil
}

// checkOpponentBooked 檢查同一場辯論中，是否有對立立場的參賽者預約了重疊時段
// 預約者必須是該辯論的參賽者，否則視為輸入錯誤
func (s *ReservationService) checkOpponentBooked(debateID, userID string, startsAt, endsAt time.Time) (bool, error) {
	participant, err := s.debateRepo.FindParticipant(debateID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("%w: 只有該辯論的參賽者才能預約", ErrValidation)
	}
	if err != nil {
		return false, err
	}

	opponentSide := participant.Side.Opposite()

	overlapping, err := s.reservationRepo.FindOverlapping(debateID, startsAt, endsAt)
	if err != nil {
		return false, err
	}

	var userIDs []string
	for _, other := range overlapping {
		if other.ReservedBy != nil {
			userIDs = append(userIDs, *other.ReservedBy)
		}
	}
	if len(userIDs) == 0 {
		return false, nil
	}

	participants, err := s.debateRepo.FindParticipantsByUserIDs(debateID, userIDs)
	if err != nil {
		return false, err
	}
	for _, p := range participants {
		if p.Side == opponentSide {
			return true, nil
		}
	}
	return false, nil
}

func (s *ReservationService) Cancel(id string) error {
	rows, err := s.reservationRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: reservation %s", ErrNotFound, id)
	}

	s.board.Broadcast(models.NewReservationCancelledEvent(id))
	return nil
}
