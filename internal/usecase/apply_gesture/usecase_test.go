package apply_gesture

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/calendar/timegrid"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	workshopClient "github.com/m04kA/SMC-CalendarService/internal/integrations/workshopservice"
)

type fakeClient struct {
	updated   *domain.Booking
	updateErr error

	calls    int
	gotID    int64
	gotStart time.Time
	gotEnd   time.Time
}

func (f *fakeClient) UpdateBookingTime(_ context.Context, id int64, startAt, endAt time.Time) (*domain.Booking, error) {
	f.calls++
	f.gotID = id
	f.gotStart = startAt
	f.gotEnd = endAt
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updated, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(t *testing.T, client *fakeClient) *UseCase {
	t.Helper()
	grid, err := timegrid.New(7, 18, 52, 15)
	require.NoError(t, err)
	return NewUseCase(client, grid, time.UTC, nil, nopLogger{})
}

// yFor переводит минуты от начала окна (07:00) в пиксельную y-координату
func yFor(minutes float64) float64 {
	return minutes / 60.0 * 52.0
}

func baseRequest(editable bool) *Request {
	return &Request{
		WorkshopID: 1,
		DateFrom:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		DateTo:     time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
		Editable:   editable,
	}
}

func moveTarget() *Target {
	return &Target{
		BookingID: 7,
		StartAt:   time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC),
		EndAt:     time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC),
		TopPx:     yFor(420),
		HeightPx:  52,
	}
}

func TestExecute_QuickCreateTrace(t *testing.T) {
	client := &fakeClient{}
	uc := newTestUseCase(t, client)

	req := baseRequest(false)
	req.Events = []PointerEvent{
		{Type: EventDown, DayIndex: 0, X: 50, Y: yFor(127)},
		{Type: EventUp, DayIndex: 0, X: 50, Y: yFor(127)},
		{Type: EventClick, DayIndex: 0, Y: yFor(127)},
	}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, OutcomeCreateIntent, resp.Outcome)
	require.NotNil(t, resp.Draft)
	assert.Equal(t, 0, resp.Draft.DayIndex)
	assert.Equal(t, time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), resp.Draft.StartAt)
	assert.Equal(t, time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC), resp.Draft.EndAt)
	assert.NotEmpty(t, resp.Draft.ChainToken)
	assert.Zero(t, client.calls)
}

func TestExecute_DragCreateTrace(t *testing.T) {
	uc := newTestUseCase(t, &fakeClient{})

	req := baseRequest(false)
	req.Events = []PointerEvent{
		{Type: EventDown, DayIndex: 0, X: 50, Y: yFor(185)},
		{Type: EventMove, DayIndex: 0, X: 50, Y: yFor(200)},
		{Type: EventUp, DayIndex: 0, X: 50, Y: yFor(200)},
		{Type: EventClick, DayIndex: 0, Y: yFor(200)}, // синтетический, гасится
	}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, OutcomeCreateIntent, resp.Outcome)
	require.NotNil(t, resp.Draft)
	assert.Equal(t, time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC), resp.Draft.StartAt)
	assert.Equal(t, time.Date(2024, 1, 10, 10, 30, 0, 0, time.UTC), resp.Draft.EndAt)
}

func TestExecute_MoveCommitsAcrossDays(t *testing.T) {
	updated := &domain.Booking{
		ID:      7,
		BayID:   3,
		Title:   "Tire change",
		Status:  domain.StatusBooked,
		StartAt: time.Date(2024, 1, 11, 9, 30, 0, 0, time.UTC),
		EndAt:   time.Date(2024, 1, 11, 10, 30, 0, 0, time.UTC),
	}
	client := &fakeClient{updated: updated}
	uc := newTestUseCase(t, client)

	req := baseRequest(true)
	req.Target = moveTarget()
	req.Events = []PointerEvent{
		{Type: EventDown, DayIndex: 0, X: 100, Y: yFor(420) + 26},
		{Type: EventMove, DayIndex: 1, X: 400, Y: yFor(150)},
		{Type: EventUp, DayIndex: 1, X: 400, Y: yFor(150)},
	}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, resp.Outcome)
	assert.Equal(t, int64(7), resp.BookingID)
	assert.Same(t, updated, resp.Updated)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, int64(7), client.gotID)
	assert.Equal(t, time.Date(2024, 1, 11, 9, 30, 0, 0, time.UTC), client.gotStart)
	assert.Equal(t, time.Date(2024, 1, 11, 10, 30, 0, 0, time.UTC), client.gotEnd)
}

func TestExecute_NonEditableTraceCommitsNothing(t *testing.T) {
	client := &fakeClient{}
	uc := newTestUseCase(t, client)

	req := baseRequest(false)
	req.Target = moveTarget()
	req.Events = []PointerEvent{
		{Type: EventDown, DayIndex: 0, X: 100, Y: yFor(420) + 26},
		{Type: EventMove, DayIndex: 1, X: 400, Y: yFor(150)},
		{Type: EventUp, DayIndex: 1, X: 400, Y: yFor(150)},
	}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, OutcomeNone, resp.Outcome)
	assert.Zero(t, client.calls)
}

func TestExecute_ClickOnBookingOpensDetail(t *testing.T) {
	uc := newTestUseCase(t, &fakeClient{})

	req := baseRequest(false)
	req.Target = moveTarget()
	req.Events = []PointerEvent{
		{Type: EventDown, DayIndex: 0, X: 100, Y: yFor(420) + 26},
		{Type: EventUp, DayIndex: 0, X: 100, Y: yFor(420) + 26},
		{Type: EventClick, DayIndex: 0, Y: yFor(420) + 26},
	}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, OutcomeOpenDetail, resp.Outcome)
	assert.Equal(t, int64(7), resp.BookingID)
}

func TestExecute_ConflictMapsToUpdateConflict(t *testing.T) {
	client := &fakeClient{updateErr: workshopClient.ErrBookingConflict}
	uc := newTestUseCase(t, client)

	req := baseRequest(true)
	req.Target = moveTarget()
	req.Events = []PointerEvent{
		{Type: EventDown, DayIndex: 0, X: 100, Y: yFor(420) + 26},
		{Type: EventMove, DayIndex: 0, X: 100, Y: yFor(150)},
		{Type: EventUp, DayIndex: 0, X: 100, Y: yFor(150)},
	}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrUpdateConflict)
}

func TestExecute_MissingBookingMapsToNotFound(t *testing.T) {
	client := &fakeClient{updateErr: workshopClient.ErrBookingNotFound}
	uc := newTestUseCase(t, client)

	req := baseRequest(true)
	req.Target = moveTarget()
	req.Events = []PointerEvent{
		{Type: EventDown, DayIndex: 0, X: 100, Y: yFor(420) + 26},
		{Type: EventMove, DayIndex: 0, X: 100, Y: yFor(150)},
		{Type: EventUp, DayIndex: 0, X: 100, Y: yFor(150)},
	}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_OtherClientErrorIsInternal(t *testing.T) {
	client := &fakeClient{updateErr: errors.New("connection refused")}
	uc := newTestUseCase(t, client)

	req := baseRequest(true)
	req.Target = moveTarget()
	req.Events = []PointerEvent{
		{Type: EventDown, DayIndex: 0, X: 100, Y: yFor(420) + 26},
		{Type: EventMove, DayIndex: 0, X: 100, Y: yFor(150)},
		{Type: EventUp, DayIndex: 0, X: 100, Y: yFor(150)},
	}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(t, &fakeClient{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "zero workshop", mutate: func(r *Request) { r.WorkshopID = 0 }},
		{name: "reversed range", mutate: func(r *Request) { r.DateTo = r.DateFrom.AddDate(0, 0, -1) }},
		{name: "empty trace", mutate: func(r *Request) { r.Events = nil }},
		{name: "unknown event type", mutate: func(r *Request) {
			r.Events = []PointerEvent{{Type: "hover", DayIndex: 0, Y: 10}}
		}},
		{name: "target without id", mutate: func(r *Request) {
			r.Target = &Target{BookingID: 0}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest(true)
			req.Events = []PointerEvent{{Type: EventClick, DayIndex: 0, Y: 10}}
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_EmptyAreaTraceWithoutTravelIsNone(t *testing.T) {
	uc := newTestUseCase(t, &fakeClient{})

	// Down-up без движения и без click: автомат молчит
	req := baseRequest(true)
	req.Events = []PointerEvent{
		{Type: EventDown, DayIndex: 0, X: 50, Y: yFor(120)},
		{Type: EventUp, DayIndex: 0, X: 50, Y: yFor(120)},
	}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, OutcomeNone, resp.Outcome)
}

func TestExecute_FreshChainTokenPerIntent(t *testing.T) {
	uc := newTestUseCase(t, &fakeClient{})

	req := baseRequest(false)
	req.Events = []PointerEvent{{Type: EventClick, DayIndex: 0, Y: yFor(120)}}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, first.Draft)
	require.NotNil(t, second.Draft)
	assert.NotEqual(t, first.Draft.ChainToken, second.Draft.ChainToken)
}
