package workshopservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(server *httptest.Server) *Client {
	return NewClient(server.URL, 2*time.Second, nopLogger{})
}

func TestListBookings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/baybookings/all", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("workshop_id"))
		assert.Equal(t, "3", q.Get("bay_id"))
		assert.Equal(t, "false", q.Get("include_cancelled"))
		assert.NotEmpty(t, q.Get("date_from"))
		assert.NotEmpty(t, q.Get("date_to"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]BayBooking{
			{
				ID:         11,
				WorkshopID: 1,
				BayID:      3,
				Title:      "Oil change",
				StartAt:    "2024-01-10T09:00:00Z",
				EndAt:      "2024-01-10T10:00:00Z",
				Status:     "booked",
				ChainToken: ptr.Ptr("job-1"),
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server)

	bookings, err := client.ListBookings(context.Background(), domain.CalendarWindowFilter{
		WorkshopID: 1,
		BayID:      ptr.Ptr(int64(3)),
		DateFrom:   time.Date(2024, 1, 10, 7, 0, 0, 0, time.UTC),
		DateTo:     time.Date(2024, 1, 12, 18, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, int64(11), bookings[0].ID)
	assert.Equal(t, domain.StatusBooked, bookings[0].Status)
	assert.Equal(t, time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), bookings[0].StartAt.UTC())
	require.NotNil(t, bookings[0].ChainToken)
	assert.Equal(t, "chain:job-1", bookings[0].ChainKey())
}

func TestListBookings_InvalidTimestamp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]BayBooking{
			{ID: 11, StartAt: "not-a-time", EndAt: "2024-01-10T10:00:00Z", Status: "booked"},
		})
	}))
	defer server.Close()

	client := newTestClient(server)

	_, err := client.ListBookings(context.Background(), domain.CalendarWindowFilter{WorkshopID: 1})

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestUpdateBookingTime(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/baybookings/edit/7", r.URL.Path)

		var body UpdateBookingTimeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2024-01-11T09:30:00Z", body.StartAt)
		assert.Equal(t, "2024-01-11T10:30:00Z", body.EndAt)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(BayBooking{
			ID:         7,
			WorkshopID: 1,
			BayID:      3,
			Title:      "Tire change",
			StartAt:    body.StartAt,
			EndAt:      body.EndAt,
			Status:     "booked",
		})
	}))
	defer server.Close()

	client := newTestClient(server)

	updated, err := client.UpdateBookingTime(context.Background(), 7,
		time.Date(2024, 1, 11, 9, 30, 0, 0, time.UTC),
		time.Date(2024, 1, 11, 10, 30, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.ID)
	assert.Equal(t, time.Date(2024, 1, 11, 9, 30, 0, 0, time.UTC), updated.StartAt.UTC())
}

func TestUpdateBookingTime_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server)

	_, err := client.UpdateBookingTime(context.Background(), 99, time.Now(), time.Now().Add(time.Hour))

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateBookingTime_Conflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Detail: "bay is double booked"})
	}))
	defer server.Close()

	client := newTestClient(server)

	_, err := client.UpdateBookingTime(context.Background(), 7, time.Now(), time.Now().Add(time.Hour))

	require.ErrorIs(t, err, ErrBookingConflict)
	assert.Contains(t, err.Error(), "bay is double booked")
}

func TestUpdateBookingTime_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server)

	_, err := client.UpdateBookingTime(context.Background(), 7, time.Now(), time.Now().Add(time.Hour))

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestListWorkingHours(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/5/working-hours", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]WorkingHoursRule{
			{
				ID:        1,
				UserID:    5,
				Weekday:   2,
				StartTime: "08:00",
				EndTime:   "16:00",
				ValidFrom: ptr.Ptr("2024-01-01"),
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server)

	rules, err := client.ListWorkingHours(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, 2, rules[0].Weekday)
	assert.Equal(t, "08:00", rules[0].StartTime.String())
	require.NotNil(t, rules[0].ValidFrom)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), rules[0].ValidFrom.UTC())
	assert.Nil(t, rules[0].ValidTo)
}

func TestListWorkingHours_UserNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server)

	_, err := client.ListWorkingHours(context.Background(), 404)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListTimeOff(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/5/time-off", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]TimeOff{
			{
				ID:      1,
				UserID:  5,
				StartAt: "2024-01-11T09:00:00Z",
				EndAt:   "2024-01-11T12:00:00Z",
				Type:    "sick",
				Reason:  ptr.Ptr("flu"),
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server)

	intervals, err := client.ListTimeOff(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, intervals, 1)
	assert.Equal(t, domain.TimeOffSick, intervals[0].Type)
	require.NotNil(t, intervals[0].Reason)
	assert.Equal(t, "flu", *intervals[0].Reason)
}

func TestListBayClosures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/workshopbays/3/closures", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("from"))
		assert.NotEmpty(t, r.URL.Query().Get("to"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]BayClosure{
			{
				ID:      2,
				BayID:   3,
				StartAt: "2024-01-12T08:00:00Z",
				EndAt:   "2024-01-12T12:00:00Z",
				Reason:  ptr.Ptr("lift maintenance"),
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server)

	closures, err := client.ListBayClosures(context.Background(), 3,
		time.Date(2024, 1, 10, 7, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 12, 18, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, closures, 1)
	assert.Equal(t, int64(3), closures[0].BayID)
}
