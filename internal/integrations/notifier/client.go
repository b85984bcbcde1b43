package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier client: internal error")

	// ErrServiceDegraded возвращается при недоступности сервиса уведомлений
	// Уведомления fire-and-forget: ошибка логируется и никогда не пробрасывается выше
	ErrServiceDegraded = errors.New("notifier unavailable: notification dropped")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BookingConfirmedMessage уведомление мастеру о подтверждённом бронировании
type BookingConfirmedMessage struct {
	ArtistID    int64  `json:"artistId"`
	BookingID   int64  `json:"bookingId"`
	ClientName  string `json:"clientName"`
	StartTime   string `json:"startTime"` // RFC3339
	MessageType string `json:"messageType"`
}

// Client клиент сервиса уведомлений
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingConfirmed отправляет мастеру уведомление о подтверждённом бронировании
func (c *Client) SendBookingConfirmed(ctx context.Context, artistID, bookingID int64, clientName string, startTime time.Time) error {
	msg := BookingConfirmedMessage{
		ArtistID:    artistID,
		BookingID:   bookingID,
		ClientName:  clientName,
		StartTime:   startTime.Format(time.RFC3339),
		MessageType: "booking_confirmed",
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/api/v1/notifications", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Notifier unavailable for artist_id=%d, booking_id=%d: %v", artistID, bookingID, err)
		return fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error("Notifier returned status %d for booking_id=%d", resp.StatusCode, bookingID)
		return fmt.Errorf("%w: unexpected status code %d", ErrServiceDegraded, resp.StatusCode)
	}

	c.log.Info("Notification sent: artist_id=%d, booking_id=%d", artistID, bookingID)
	return nil
}
