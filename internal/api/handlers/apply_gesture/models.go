package apply_gesture

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	applyGesture "github.com/m04kA/SMC-CalendarService/internal/usecase/apply_gesture"
)

// GestureRequest HTTP request model трассы жеста
type GestureRequest struct {
	WorkshopID int64          `json:"workshopId"`
	DateFrom   string         `json:"dateFrom"` // YYYY-MM-DD
	DateTo     string         `json:"dateTo"`   // YYYY-MM-DD
	Target     *Target        `json:"target,omitempty"`
	Events     []PointerEvent `json:"events"`
}

// Target бронирование под указателем в координатах render-модели
type Target struct {
	BookingID int64   `json:"bookingId"`
	StartAt   string  `json:"startAt"` // ISO-8601
	EndAt     string  `json:"endAt"`   // ISO-8601
	TopPx     float64 `json:"topPx"`
	HeightPx  float64 `json:"heightPx"`
}

// PointerEvent одно событие указателя
type PointerEvent struct {
	Type     string  `json:"type"` // down | move | up | click
	DayIndex int     `json:"dayIndex"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// GestureResponse HTTP response model итога жеста
type GestureResponse struct {
	Outcome   string          `json:"outcome"`
	BookingID int64           `json:"bookingId,omitempty"`
	Draft     *Draft          `json:"draft,omitempty"`
	Updated   *UpdatedBooking `json:"updated,omitempty"`
}

// Draft черновой диапазон для формы создания
type Draft struct {
	DayIndex   int    `json:"dayIndex"`
	StartAt    string `json:"startAt"`
	EndAt      string `json:"endAt"`
	ChainToken string `json:"chainToken"`
}

// UpdatedBooking актуальное состояние бронирования после коммита
type UpdatedBooking struct {
	ID      int64  `json:"id"`
	BayID   int64  `json:"bayId"`
	Title   string `json:"title"`
	Status  string `json:"status"`
	StartAt string `json:"startAt"`
	EndAt   string `json:"endAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
// editable приходит из роли аутентифицированного пользователя
func (r *GestureRequest) ToUseCaseRequest(editable bool) (*applyGesture.Request, error) {
	from, err := time.Parse(domain.DateFormat, r.DateFrom)
	if err != nil {
		return nil, fmt.Errorf("invalid dateFrom: %w", err)
	}
	to, err := time.Parse(domain.DateFormat, r.DateTo)
	if err != nil {
		return nil, fmt.Errorf("invalid dateTo: %w", err)
	}

	req := &applyGesture.Request{
		WorkshopID: r.WorkshopID,
		DateFrom:   from,
		DateTo:     to,
		Editable:   editable,
	}

	if r.Target != nil {
		startAt, err := time.Parse(time.RFC3339, r.Target.StartAt)
		if err != nil {
			return nil, fmt.Errorf("invalid target.startAt: %w", err)
		}
		endAt, err := time.Parse(time.RFC3339, r.Target.EndAt)
		if err != nil {
			return nil, fmt.Errorf("invalid target.endAt: %w", err)
		}
		req.Target = &applyGesture.Target{
			BookingID: r.Target.BookingID,
			StartAt:   startAt,
			EndAt:     endAt,
			TopPx:     r.Target.TopPx,
			HeightPx:  r.Target.HeightPx,
		}
	}

	req.Events = make([]applyGesture.PointerEvent, len(r.Events))
	for i, ev := range r.Events {
		req.Events[i] = applyGesture.PointerEvent{
			Type:     ev.Type,
			DayIndex: ev.DayIndex,
			X:        ev.X,
			Y:        ev.Y,
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *applyGesture.Response) *GestureResponse {
	out := &GestureResponse{
		Outcome:   string(resp.Outcome),
		BookingID: resp.BookingID,
	}

	if resp.Draft != nil {
		out.Draft = &Draft{
			DayIndex:   resp.Draft.DayIndex,
			StartAt:    resp.Draft.StartAt.Format(time.RFC3339),
			EndAt:      resp.Draft.EndAt.Format(time.RFC3339),
			ChainToken: resp.Draft.ChainToken,
		}
	}

	if resp.Updated != nil {
		out.Updated = &UpdatedBooking{
			ID:      resp.Updated.ID,
			BayID:   resp.Updated.BayID,
			Title:   resp.Updated.Title,
			Status:  string(resp.Updated.Status),
			StartAt: resp.Updated.StartAt.Format(time.RFC3339),
			EndAt:   resp.Updated.EndAt.Format(time.RFC3339),
		}
	}

	return out
}
