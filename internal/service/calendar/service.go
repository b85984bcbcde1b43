package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/TSB-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/TSB-SchedulingService/pkg/types"
)

// Service календарный read model поверх бронирований
//
// Событие существует в календаре тогда и только тогда, когда его бронирование
// активно (pending/confirmed) - фильтрация происходит в запросе, а не зеркалированием
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр календарного сервиса
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// ListEvents возвращает активные сеансы мастера за период, отсортированные по началу
func (s *Service) ListEvents(ctx context.Context, artistID int64, from, to time.Time) ([]*domain.Appointment, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to is before from", ErrInvalidRange)
	}

	bookings, err := s.bookingRepo.ListActiveByArtistAndDateRange(ctx, artistID, from, to)
	if err != nil {
		s.logger.Error("ListEvents: repository error for artist=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: ListEvents - repository error: %v", ErrInternal, err)
	}

	appointments := make([]*domain.Appointment, 0, len(bookings))
	for _, b := range bookings {
		if appt := domain.NewAppointmentFromBooking(b); appt != nil {
			appointments = append(appointments, appt)
		}
	}

	return appointments, nil
}

// CheckOverlap проверяет, пересекается ли полуинтервал [start, end) с каким-либо
// активным сеансом мастера, кроме excludeID
// Совпадающие границы пересечением не считаются
func (s *Service) CheckOverlap(ctx context.Context, artistID, excludeID int64, start, end time.Time) (bool, error) {
	if !end.After(start) {
		return false, fmt.Errorf("%w: end must be after start", ErrInvalidRange)
	}

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	dayEnd := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())

	appointments, err := s.ListEvents(ctx, artistID, dayStart, dayEnd)
	if err != nil {
		return false, err
	}

	for _, appt := range appointments {
		if appt.BookingID == excludeID {
			continue
		}
		if appt.Overlaps(start, end) {
			return true, nil
		}
	}

	return false, nil
}

// Reschedule переносит сеанс на новый интервал
//
// Последовательность "проверка пересечения - запись" сознательно НЕ атомарна:
// операция выполняется человеком при перетаскивании в календаре, частота низкая
// Сам перенос - одно условное обновление по (id AND artist_id), чужое
// бронирование не затрагивается
func (s *Service) Reschedule(ctx context.Context, artistID, bookingID int64, newStart, newEnd time.Time) error {
	if !newEnd.After(newStart) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidRange)
	}

	busy, err := s.CheckOverlap(ctx, artistID, bookingID, newStart, newEnd)
	if err != nil {
		return err
	}
	if busy {
		s.logger.Warn("Reschedule: booking id=%d overlaps another appointment", bookingID)
		return ErrTimeSlotBusy
	}

	newDate := time.Date(newStart.Year(), newStart.Month(), newStart.Day(), 0, 0, 0, 0, newStart.Location())
	durationMinutes := int(newEnd.Sub(newStart) / time.Minute)

	err = s.bookingRepo.Reschedule(ctx, artistID, bookingID, newDate, types.NewTimeString(newStart), durationMinutes)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Reschedule: booking id=%d not found for artist=%d", bookingID, artistID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Reschedule: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Reschedule: booking id=%d moved to %s", bookingID, newStart.Format(time.RFC3339))
	return nil
}
