package service

import (
	"errors"
	"time"

	"github.com/seyirtepe/seyirtepe-backend/internal/app/model"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/repository"
	"github.com/seyirtepe/seyirtepe-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrReservationNotFound      = errors.New("reservation not found")
	ErrInvalidReservationStatus = errors.New("invalid reservation status")
)

type ReservationService interface {
	CreateReservation(reservation *model.Reservation) error
	GetReservations(offset, limit int) ([]model.Reservation, error)
	GetReservationByID(id uint) (*model.Reservation, error)
	UpdateReservationStatus(id uint, status string) (*model.Reservation, error)
	GetReservationsBetween(start, end time.Time) ([]model.Reservation, error)
}

type reservationService struct {
	reservationRepo repository.ReservationRepository
}

func NewReservationService(reservationRepo repository.ReservationRepository) ReservationService {
	return &reservationService{reservationRepo: reservationRepo}
}

// CreateReservation stores a new reservation request in pending state.
func (s *reservationService) CreateReservation(reservation *model.Reservation) error {
	reservation.Status = model.ReservationStatusPending
	reservation.Normalize()

	logger.Info("Creating reservation", map[string]interface{}{
		"customer_name": reservation.CustomerName,
		"date":          reservation.Date,
		"guests":        reservation.Guests,
	})

	if err := s.reservationRepo.Create(reservation); err != nil {
		return err
	}

	logger.Info("Reservation created", map[string]interface{}{
		"reservation_id": reservation.ID,
	})
	return nil
}

func (s *reservationService) GetReservations(offset, limit int) ([]model.Reservation, error) {
	reservations, err := s.reservationRepo.FindAll(offset, limit)
	if err != nil {
		return nil, err
	}

	for i := range reservations {
		reservations[i].Normalize()
	}
	return reservations, nil
}

func (s *reservationService) GetReservationByID(id uint) (*model.Reservation, error) {
	reservation, err := s.reservationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	reservation.Normalize()
	return reservation, nil
}

// UpdateReservationStatus sets the reservation status after validating
// the submitted value. Invalid input leaves the stored status untouched.
func (s *reservationService) UpdateReservationStatus(id uint, status string) (*model.Reservation, error) {
	newStatus := model.ReservationStatus(status)
	if !newStatus.Valid() {
		logger.Warn("Rejected reservation status update: unknown status", map[string]interface{}{
			"reservation_id": id,
			"status":         status,
		})
		return nil, ErrInvalidReservationStatus
	}

	if _, err := s.GetReservationByID(id); err != nil {
		return nil, err
	}

	if err := s.reservationRepo.UpdateStatus(id, newStatus); err != nil {
		return nil, err
	}

	logger.Info("Reservation status updated", map[string]interface{}{
		"reservation_id": id,
		"status":         newStatus,
	})

	return s.GetReservationByID(id)
}

func (s *reservationService) GetReservationsBetween(start, end time.Time) ([]model.Reservation, error) {
	reservations, err := s.reservationRepo.FindCreatedBetween(start, end)
	if err != nil {
		return nil, err
	}

	for i := range reservations {
		reservations[i].Normalize()
	}
	return reservations, nil
}
