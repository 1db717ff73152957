package service

import (
	"testing"
	"time"

	"github.com/seyirtepe/seyirtepe-backend/internal/app/model"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/repository"
	"github.com/seyirtepe/seyirtepe-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupReservationService(t *testing.T) (ReservationService, *gorm.DB) {
	t.Helper()

	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })

	return NewReservationService(repository.NewReservationRepository(database)), database
}

func newTestReservation() *model.Reservation {
	return &model.Reservation{
		CustomerName:  "Mehmet Demir",
		CustomerPhone: "+90-555-333-4455",
		Date:          time.Now().AddDate(0, 0, 3),
		Guests:        4,
	}
}

func TestCreateReservationStartsPending(t *testing.T) {
	svc, _ := setupReservationService(t)

	reservation := newTestReservation()
	reservation.Status = "confirmed" // submitted status must be ignored

	require.NoError(t, svc.CreateReservation(reservation))

	stored, err := svc.GetReservationByID(reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationStatusPending, stored.Status)
}

func TestCreateReservationNormalizesEmptyEmail(t *testing.T) {
	svc, _ := setupReservationService(t)

	empty := ""
	reservation := newTestReservation()
	reservation.CustomerEmail = &empty

	require.NoError(t, svc.CreateReservation(reservation))

	stored, err := svc.GetReservationByID(reservation.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.CustomerEmail)
}

func TestUpdateReservationStatus(t *testing.T) {
	svc, _ := setupReservationService(t)

	reservation := newTestReservation()
	require.NoError(t, svc.CreateReservation(reservation))

	updated, err := svc.UpdateReservationStatus(reservation.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, model.ReservationStatusCompleted, updated.Status)
}

func TestUpdateReservationStatusInvalid(t *testing.T) {
	svc, _ := setupReservationService(t)

	reservation := newTestReservation()
	require.NoError(t, svc.CreateReservation(reservation))

	tests := []struct {
		name   string
		status string
	}{
		{"order-only status", "preparing"},
		{"unknown value", "booked"},
		{"uppercase rejected", "Confirmed"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateReservationStatus(reservation.ID, tt.status)
			assert.ErrorIs(t, err, ErrInvalidReservationStatus)

			stored, err := svc.GetReservationByID(reservation.ID)
			require.NoError(t, err)
			assert.Equal(t, model.ReservationStatusPending, stored.Status)
		})
	}
}

func TestUpdateReservationStatusNotFound(t *testing.T) {
	svc, _ := setupReservationService(t)

	_, err := svc.UpdateReservationStatus(9999, "confirmed")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestReservationStatusNormalizationOnRead(t *testing.T) {
	svc, database := setupReservationService(t)

	reservation := newTestReservation()
	require.NoError(t, svc.CreateReservation(reservation))

	require.NoError(t, database.Model(&model.Reservation{}).
		Where("id = ?", reservation.ID).
		Update("status", "CANCELLED").Error)

	stored, err := svc.GetReservationByID(reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationStatusCancelled, stored.Status)
}

func TestGetReservationsOrderedNewestFirst(t *testing.T) {
	svc, database := setupReservationService(t)

	first := newTestReservation()
	require.NoError(t, svc.CreateReservation(first))
	require.NoError(t, database.Model(&model.Reservation{}).
		Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	second := newTestReservation()
	require.NoError(t, svc.CreateReservation(second))

	reservations, err := svc.GetReservations(0, 10)
	require.NoError(t, err)
	require.Len(t, reservations, 2)
	assert.Equal(t, second.ID, reservations[0].ID)
	assert.Equal(t, first.ID, reservations[1].ID)
}
