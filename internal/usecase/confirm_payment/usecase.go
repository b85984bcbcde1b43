package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TSB-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/TSB-SchedulingService/internal/infra/storage/booking"
)

// Usecase идемпотентное подтверждение бронирования по событию платежа
//
// Доставка событий at-least-once: одно и то же событие может прийти N раз,
// в том числе конкурентно. Идемпотентность обеспечивается условным UPDATE
// в репозитории (WHERE status='pending'), а не проверками в памяти
type Usecase struct {
	bookingRepo BookingRepository
	calendar    CalendarSync // nil, если интеграция выключена
	notifier    Notifier     // nil, если интеграция выключена
	logger      Logger
}

// NewUsecase создает новый экземпляр usecase подтверждения платежа
func NewUsecase(bookingRepo BookingRepository, calendar CalendarSync, notifier Notifier, logger Logger) *Usecase {
	return &Usecase{
		bookingRepo: bookingRepo,
		calendar:    calendar,
		notifier:    notifier,
		logger:      logger,
	}
}

// HandleEvent обрабатывает событие платёжного процессора
//
// Порядок шагов:
//  1. событие без успеха (payment.failed, неизвестный тип) - no-op,
//     бронирование остаётся pending и ждёт следующего события
//  2. загрузка бронирования по ID из события
//  3. guard статуса: не pending - ничего не делаем
//  4. guard ссылки: ссылка платежа не совпала - громкий лог, no-op
//  5. best-effort запись во внешний календарь
//  6. атомарный условный переход pending -> confirmed
//  7. best-effort уведомление мастера
//
// Ошибка возвращается только при сбое хранилища; все guard-исходы - это
// валидные Result, которые процессору подтверждаются как успех
func (u *Usecase) HandleEvent(ctx context.Context, event PaymentEvent) (*Result, error) {
	if event.BookingID <= 0 || event.PaymentReference == "" {
		return nil, fmt.Errorf("%w: bookingId and paymentReference are required", ErrInvalidEvent)
	}

	if event.EventType != EventPaymentSucceeded {
		// payment.failed не переводит бронирование в отказ: клиент может
		// повторить оплату, pending истекает по операторскому решению
		u.logger.Info("HandleEvent: ignoring event type=%s for booking=%d", event.EventType, event.BookingID)
		return &Result{Outcome: OutcomeIgnored, BookingID: event.BookingID}, nil
	}

	booking, err := u.bookingRepo.GetByID(ctx, event.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			u.logger.Warn("HandleEvent: payment event for unknown booking=%d", event.BookingID)
			return &Result{Outcome: OutcomeBookingNotFound, BookingID: event.BookingID}, nil
		}
		u.logger.Error("HandleEvent: failed to load booking=%d: %v", event.BookingID, err)
		return nil, fmt.Errorf("%w: HandleEvent - load booking: %v", ErrInternal, err)
	}

	if booking.Status != domain.StatusPending {
		if booking.Status == domain.StatusConfirmed {
			u.logger.Info("HandleEvent: booking=%d already confirmed, duplicate delivery", event.BookingID)
			return &Result{Outcome: OutcomeAlreadyConfirmed, BookingID: event.BookingID}, nil
		}
		u.logger.Warn("HandleEvent: booking=%d in terminal status=%s, event ignored", event.BookingID, booking.Status)
		return &Result{Outcome: OutcomeIgnored, BookingID: event.BookingID}, nil
	}

	if booking.PaymentReference != event.PaymentReference {
		// Несовпадение ссылки - признак ошибки интеграции или подмены,
		// логируем громко и не меняем состояние
		u.logger.Error("HandleEvent: payment reference mismatch for booking=%d: expected=%q got=%q",
			event.BookingID, booking.PaymentReference, event.PaymentReference)
		return &Result{Outcome: OutcomeReferenceMismatch, BookingID: event.BookingID}, nil
	}

	integrationID := u.syncCalendar(ctx, booking)

	confirmed, err := u.bookingRepo.ConfirmPending(ctx, booking.ID, integrationID)
	if err != nil {
		u.logger.Error("HandleEvent: failed to confirm booking=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: HandleEvent - confirm booking: %v", ErrInternal, err)
	}
	if !confirmed {
		// Конкурентная доставка успела первой: строка уже не pending
		u.logger.Info("HandleEvent: booking=%d confirmed by concurrent delivery", booking.ID)
		return &Result{Outcome: OutcomeAlreadyConfirmed, BookingID: booking.ID}, nil
	}

	u.notify(ctx, booking)

	u.logger.Info("HandleEvent: booking=%d confirmed, payment_reference=%s", booking.ID, event.PaymentReference)
	return &Result{Outcome: OutcomeConfirmed, BookingID: booking.ID}, nil
}

// syncCalendar создает запись во внешнем календаре
// Сбой интеграции не блокирует подтверждение: бронирование важнее зеркала
func (u *Usecase) syncCalendar(ctx context.Context, booking *domain.Booking) *string {
	if u.calendar == nil {
		return nil
	}

	integrationID, err := u.calendar.CreateBooking(ctx, booking.ArtistID, booking.StartAt(), booking.ClientName, booking.ClientEmail)
	if err != nil {
		u.logger.Warn("syncCalendar: degraded for booking=%d, confirming without integration id: %v", booking.ID, err)
		return nil
	}
	return &integrationID
}

// notify отправляет уведомление мастеру, сбой только логируется
func (u *Usecase) notify(ctx context.Context, booking *domain.Booking) {
	if u.notifier == nil {
		return
	}

	if err := u.notifier.SendBookingConfirmed(ctx, booking.ArtistID, booking.ID, booking.ClientName, booking.StartAt()); err != nil {
		u.logger.Warn("notify: failed for booking=%d: %v", booking.ID, err)
	}
}
