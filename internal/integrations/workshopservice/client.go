package workshopservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с WorkshopService (бэкенд мастерской -
// система записи для бронирований, рабочих часов и отсутствий)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента WorkshopService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListBookings получает бронирования, пересекающие временное окно фильтра
// Результат может содержать бронирования, частично выходящие за окно -
// клиппингом занимается вызывающая сторона
func (c *Client) ListBookings(ctx context.Context, filter domain.CalendarWindowFilter) ([]*domain.Booking, error) {
	q := url.Values{}
	q.Set("workshop_id", strconv.FormatInt(filter.WorkshopID, 10))
	q.Set("date_from", filter.DateFrom.Format(time.RFC3339))
	q.Set("date_to", filter.DateTo.Format(time.RFC3339))
	q.Set("include_cancelled", strconv.FormatBool(filter.IncludeCancelled))
	if filter.BayID != nil {
		q.Set("bay_id", strconv.FormatInt(*filter.BayID, 10))
	}
	if filter.AssignedUserID != nil {
		q.Set("assigned_user_id", strconv.FormatInt(*filter.AssignedUserID, 10))
	}

	endpoint := fmt.Sprintf("%s/baybookings/all?%s", c.baseURL, q.Encode())

	var wire []BayBooking
	if err := c.getJSON(ctx, endpoint, &wire); err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, 0, len(wire))
	for i := range wire {
		b, err := wire[i].ToDomain()
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

// UpdateBookingTime обновляет временной диапазон бронирования
// Отправляются только start_at и end_at - остальные поля бронирования
// остаются нетронутыми на стороне системы записи
func (c *Client) UpdateBookingTime(ctx context.Context, id int64, startAt, endAt time.Time) (*domain.Booking, error) {
	endpoint := fmt.Sprintf("%s/baybookings/edit/%d", c.baseURL, id)

	payload := UpdateBookingTimeRequest{
		StartAt: startAt.Format(time.RFC3339),
		EndAt:   endAt.Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal update payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrBookingNotFound
	case http.StatusConflict:
		// Backend отклонил время из-за двойного бронирования бокса/механика
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		c.log.Warn("UpdateBookingTime: conflict for booking id=%d: %s", id, errResp.Detail)
		return nil, fmt.Errorf("%w: %s", ErrBookingConflict, errResp.Detail)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var wire BayBooking
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return wire.ToDomain()
}

// ListWorkingHours получает правила рабочих часов сотрудника
func (c *Client) ListWorkingHours(ctx context.Context, userID int64) ([]domain.WorkingHoursRule, error) {
	endpoint := fmt.Sprintf("%s/users/%d/working-hours", c.baseURL, userID)

	var wire []WorkingHoursRule
	if err := c.getJSON(ctx, endpoint, &wire); err != nil {
		return nil, err
	}

	rules := make([]domain.WorkingHoursRule, 0, len(wire))
	for i := range wire {
		r, err := wire[i].ToDomain()
		if err != nil {
			return nil, err
		}
		rules = append(rules, *r)
	}

	return rules, nil
}

// ListTimeOff получает интервалы отсутствия сотрудника
func (c *Client) ListTimeOff(ctx context.Context, userID int64) ([]domain.TimeOffInterval, error) {
	endpoint := fmt.Sprintf("%s/users/%d/time-off", c.baseURL, userID)

	var wire []TimeOff
	if err := c.getJSON(ctx, endpoint, &wire); err != nil {
		return nil, err
	}

	intervals := make([]domain.TimeOffInterval, 0, len(wire))
	for i := range wire {
		t, err := wire[i].ToDomain()
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, *t)
	}

	return intervals, nil
}

// ListBayClosures получает закрытия бокса, пересекающие окно [from, to)
func (c *Client) ListBayClosures(ctx context.Context, bayID int64, from, to time.Time) ([]domain.BayClosure, error) {
	q := url.Values{}
	q.Set("from", from.Format(time.RFC3339))
	q.Set("to", to.Format(time.RFC3339))

	endpoint := fmt.Sprintf("%s/workshopbays/%d/closures?%s", c.baseURL, bayID, q.Encode())

	var wire []BayClosure
	if err := c.getJSON(ctx, endpoint, &wire); err != nil {
		return nil, err
	}

	closures := make([]domain.BayClosure, 0, len(wire))
	for i := range wire {
		cl, err := wire[i].ToDomain()
		if err != nil {
			return nil, err
		}
		closures = append(closures, *cl)
	}

	return closures, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrUserNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
