package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/m04kA/TSB-SchedulingService/internal/domain"
)

// Usecase создание бронирования
//
// Новое бронирование всегда pending: подтверждение происходит только
// по событию успешного платежа от процессора
type Usecase struct {
	bookingRepo  BookingRepository
	availability AvailabilityStore
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger

	hourStart int
	hourEnd   int
}

// NewUsecase создает новый экземпляр usecase создания бронирования
func NewUsecase(
	bookingRepo BookingRepository,
	availability AvailabilityStore,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
	hourStart, hourEnd int,
) *Usecase {
	return &Usecase{
		bookingRepo:  bookingRepo,
		availability: availability,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
		hourStart:    hourStart,
		hourEnd:      hourEnd,
	}
}

// CreateBooking создает pending бронирование с ожидаемой ссылкой платежа
//
// Проверка пересечений и вставка выполняются в serializable транзакции:
// выборка активных бронирований дня берёт FOR UPDATE, так что два
// конкурентных запроса на одно время не создадут пересекающиеся сеансы
func (u *Usecase) CreateBooking(ctx context.Context, req Request) (*Response, error) {
	now := u.timeProvider.Now()

	parsed, err := validateRequest(req, now)
	if err != nil {
		return nil, err
	}

	if err := u.checkSlotAvailable(ctx, req.ArtistID, parsed, req.DurationMinutes); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ArtistID:         req.ArtistID,
		ClientName:       req.ClientName,
		ClientEmail:      req.ClientEmail,
		BookingDate:      parsed.bookingDate,
		StartTime:        parsed.startTime,
		DurationMinutes:  req.DurationMinutes,
		Status:           domain.StatusPending,
		PaymentStatus:    domain.PaymentPending,
		PaymentReference: uuid.NewString(),
		Notes:            req.Notes,
	}

	start := booking.StartAt()
	end := booking.EndAt()

	err = u.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := u.bookingRepo.ListActiveByArtistAndDateRange(txCtx, req.ArtistID, parsed.bookingDate, parsed.bookingDate)
		if err != nil {
			return fmt.Errorf("%w: CreateBooking - list active bookings: %v", ErrInternal, err)
		}

		for _, b := range existing {
			a := domain.NewAppointmentFromBooking(b)
			if a != nil && a.Overlaps(start, end) {
				return ErrTimeSlotBusy
			}
		}

		if _, err := u.bookingRepo.Create(txCtx, booking); err != nil {
			return fmt.Errorf("%w: CreateBooking - create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if err == ErrTimeSlotBusy {
			u.logger.Warn("CreateBooking: time slot busy for artist=%d date=%s start=%s",
				req.ArtistID, req.BookingDate, req.StartTime)
			return nil, err
		}
		u.logger.Error("CreateBooking: transaction failed for artist=%d: %v", req.ArtistID, err)
		return nil, err
	}

	u.logger.Info("CreateBooking: created pending booking id=%d artist=%d date=%s start=%s",
		booking.ID, booking.ArtistID, req.BookingDate, req.StartTime)

	return toResponse(booking), nil
}

// checkSlotAvailable проверяет, что сеанс целиком лежит в рабочем окне
// и все покрываемые часовые ячейки доступны в сетке
func (u *Usecase) checkSlotAvailable(ctx context.Context, artistID int64, parsed *parsedRequest, durationMinutes int) error {
	startMinutes := parsed.startTime.TotalMinutes()
	endMinutes := startMinutes + durationMinutes

	if startMinutes < u.hourStart*60 || endMinutes > u.hourEnd*60 {
		return fmt.Errorf("%w: session must fit within working hours %02d:00-%02d:00",
			ErrSlotUnavailable, u.hourStart, u.hourEnd)
	}

	schedule, err := u.availability.GetWeek(ctx, artistID)
	if err != nil {
		return fmt.Errorf("%w: checkSlotAvailable - load availability: %v", ErrInternal, err)
	}

	start := time.Date(
		parsed.bookingDate.Year(), parsed.bookingDate.Month(), parsed.bookingDate.Day(),
		parsed.startTime.Hour(), parsed.startTime.Minute(), 0, 0, parsed.bookingDate.Location(),
	)
	day, _ := domain.DayHourFromTime(start)

	firstHour := startMinutes / 60
	lastHour := (endMinutes - 1) / 60
	for hour := firstHour; hour <= lastHour; hour++ {
		if !schedule.IsAvailable(day, hour) {
			return fmt.Errorf("%w: cell %s is blocked", ErrSlotUnavailable, domain.NewSlotKey(day, hour))
		}
	}

	return nil
}
