package repository

import (
	"time"

	"github.com/seyirtepe/seyirtepe-backend/internal/app/model"
	"github.com/seyirtepe/seyirtepe-backend/pkg/logger"
	"gorm.io/gorm"
)

type ReservationRepository interface {
	Create(reservation *model.Reservation) error
	FindAll(offset, limit int) ([]model.Reservation, error)
	FindByID(id uint) (*model.Reservation, error)
	UpdateStatus(id uint, status model.ReservationStatus) error
	FindCreatedBetween(start, end time.Time) ([]model.Reservation, error)
	CountCreatedBetween(start, end time.Time) (int64, error)
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(reservation *model.Reservation) error {
	logger.Debug("Creating reservation in database", map[string]interface{}{
		"customer_name": reservation.CustomerName,
		"date":          reservation.Date,
		"guests":        reservation.Guests,
	})

	if err := r.db.Create(reservation).Error; err != nil {
		logger.Error("Failed to create reservation in database", err, map[string]interface{}{
			"customer_name": reservation.CustomerName,
			"date":          reservation.Date,
		})
		return err
	}

	logger.Debug("Reservation created in database", map[string]interface{}{
		"reservation_id": reservation.ID,
	})
	return nil
}

func (r *reservationRepository) FindAll(offset, limit int) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := r.db.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&reservations).Error; err != nil {
		logger.Error("Failed to find reservations in database", err, map[string]interface{}{
			"offset": offset,
			"limit":  limit,
		})
		return nil, err
	}

	logger.Debug("Reservations found in database", map[string]interface{}{
		"offset": offset,
		"limit":  limit,
		"count":  len(reservations),
	})
	return reservations, nil
}

func (r *reservationRepository) FindByID(id uint) (*model.Reservation, error) {
	var reservation model.Reservation
	if err := r.db.First(&reservation, id).Error; err != nil {
		logger.Error("Failed to find reservation by ID in database", err, map[string]interface{}{
			"reservation_id": id,
		})
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) UpdateStatus(id uint, status model.ReservationStatus) error {
	if err := r.db.Model(&model.Reservation{}).Where("id = ?", id).
		Update("status", status).Error; err != nil {
		logger.Error("Failed to update reservation status in database", err, map[string]interface{}{
			"reservation_id": id,
			"status":         status,
		})
		return err
	}

	logger.Debug("Reservation status updated in database", map[string]interface{}{
		"reservation_id": id,
		"status":         status,
	})
	return nil
}

func (r *reservationRepository) FindCreatedBetween(start, end time.Time) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := r.db.Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at ASC").
		Find(&reservations).Error; err != nil {
		logger.Error("Failed to find reservations by period in database", err, map[string]interface{}{
			"start": start,
			"end":   end,
		})
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) CountCreatedBetween(start, end time.Time) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Reservation{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error; err != nil {
		logger.Error("Failed to count reservations by period in database", err, map[string]interface{}{
			"start": start,
			"end":   end,
		})
		return 0, err
	}
	return count, nil
}
