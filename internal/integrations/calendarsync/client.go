package calendarsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего календарного сервиса
// Интеграция необязательная: любой сбой здесь не должен ломать подтверждение бронирования
type Client struct {
	baseURL     string
	eventTypeID string
	httpClient  *http.Client
	log         Logger
}

// NewClient создает новый экземпляр клиента календарного сервиса
func NewClient(baseURL, eventTypeID string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		eventTypeID: eventTypeID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateBooking создает запись во внешнем календаре и возвращает её ID
// Таймаут ограничен httpClient.Timeout; любая ошибка оборачивается в ErrServiceDegraded,
// чтобы вызывающая сторона могла залогировать и продолжить
func (c *Client) CreateBooking(ctx context.Context, artistID int64, startTime time.Time, clientName, clientEmail string) (string, error) {
	reqBody := CreateBookingRequest{
		ResourceIdentity:  strconv.FormatInt(artistID, 10),
		EventTypeIdentity: c.eventTypeID,
		StartTime:         startTime.Format(time.RFC3339),
		ClientName:        clientName,
		ClientEmail:       clientEmail,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/api/v1/bookings", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("CalendarSync unavailable for artist_id=%d: %v", artistID, err)
		return "", fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("CalendarSync returned status %d for artist_id=%d: %s", resp.StatusCode, artistID, string(body))
		return "", fmt.Errorf("%w: unexpected status code %d", ErrServiceDegraded, resp.StatusCode)
	}

	var result CreateBookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if result.BookingID == "" {
		return "", fmt.Errorf("%w: empty booking id in response", ErrInvalidResponse)
	}

	c.log.Info("CalendarSync booking created: artist_id=%d, integration_id=%s", artistID, result.BookingID)
	return result.BookingID, nil
}
