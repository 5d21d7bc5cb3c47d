package chain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

func booking(id int64, token *string, start time.Time, durMin int) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		WorkshopID: 1,
		BayID:      1,
		Title:      "Service",
		StartAt:    start,
		EndAt:      start.Add(time.Duration(durMin) * time.Minute),
		Status:     domain.StatusBooked,
		ChainToken: token,
	}
}

func TestGroup_Empty(t *testing.T) {
	assert.Empty(t, Group(nil))
	assert.Empty(t, Group([]*domain.Booking{}))
}

func TestGroup_SingleBookingFormsSingletonChain(t *testing.T) {
	start := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	b := booking(42, nil, start, 60)

	chains := Group([]*domain.Booking{b})

	require.Len(t, chains, 1)
	assert.Equal(t, "single:42", chains[0].Key)
	require.Len(t, chains[0].Parts, 1)
	assert.Same(t, b, chains[0].Parts[0])
	assert.Same(t, b, chains[0].Master)
}

func TestGroup_SharedTokenGroupsParts(t *testing.T) {
	token := ptr.Ptr("repair-7f3a")
	day1 := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 11, 13, 0, 0, 0, time.UTC)

	partA := booking(1, token, day1, 60)
	partB := booking(2, token, day2, 120)
	standalone := booking(3, nil, day1.Add(30*time.Minute), 60)

	chains := Group([]*domain.Booking{partB, standalone, partA})

	require.Len(t, chains, 2)

	// Цепочки упорядочены по самой ранней части
	assert.Equal(t, "chain:repair-7f3a", chains[0].Key)
	assert.Equal(t, "single:3", chains[1].Key)

	// Части внутри цепочки - по возрастанию StartAt
	require.Len(t, chains[0].Parts, 2)
	assert.Same(t, partA, chains[0].Parts[0])
	assert.Same(t, partB, chains[0].Parts[1])
}

func TestGroup_EveryBookingInExactlyOneChain(t *testing.T) {
	tokenX := ptr.Ptr("x")
	tokenY := ptr.Ptr("y")
	base := time.Date(2024, 1, 10, 7, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		booking(1, tokenX, base.Add(2*time.Hour), 60),
		booking(2, nil, base, 30),
		booking(3, tokenY, base.Add(time.Hour), 60),
		booking(4, tokenX, base.Add(5*time.Hour), 60),
		booking(5, nil, base.Add(3*time.Hour), 45),
		booking(6, tokenY, base.Add(4*time.Hour), 60),
	}

	chains := Group(bookings)

	seen := make(map[int64]int)
	for _, ch := range chains {
		for _, p := range ch.Parts {
			seen[p.ID]++
			assert.Equal(t, ch.Key, p.ChainKey())
		}
	}

	require.Len(t, seen, len(bookings))
	for id, count := range seen {
		assert.Equal(t, 1, count, "booking %d", id)
	}
}

func TestGroup_PartsSortedByStartThenID(t *testing.T) {
	token := ptr.Ptr("tie")
	start := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	// Одинаковый StartAt: порядок определяет ID
	p2 := booking(2, token, start, 60)
	p1 := booking(1, token, start, 60)
	p3 := booking(3, token, start.Add(-time.Hour), 30)

	chains := Group([]*domain.Booking{p2, p1, p3})

	require.Len(t, chains, 1)
	require.Len(t, chains[0].Parts, 3)
	assert.Equal(t, int64(3), chains[0].Parts[0].ID)
	assert.Equal(t, int64(1), chains[0].Parts[1].ID)
	assert.Equal(t, int64(2), chains[0].Parts[2].ID)
}

func TestGroup_MasterIsPricedPart(t *testing.T) {
	token := ptr.Ptr("priced")
	start := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	early := booking(1, token, start, 60)
	late := booking(2, token, start.Add(4*time.Hour), 60)
	late.FinalPriceOre = ptr.Ptr(int64(149900))

	chains := Group([]*domain.Booking{early, late})

	require.Len(t, chains, 1)
	assert.Same(t, late, chains[0].Master, "part carrying pricing wins over earlier part")
}

func TestGroup_MasterFallsBackToEarliestPart(t *testing.T) {
	token := ptr.Ptr("unpriced")
	start := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	early := booking(1, token, start, 60)
	late := booking(2, token, start.Add(4*time.Hour), 60)

	chains := Group([]*domain.Booking{late, early})

	require.Len(t, chains, 1)
	assert.Same(t, early, chains[0].Master)
}

func TestGroup_EmptyTokenTreatedAsStandalone(t *testing.T) {
	start := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	a := booking(1, ptr.Ptr(""), start, 60)
	b := booking(2, ptr.Ptr(""), start.Add(time.Hour), 60)

	chains := Group([]*domain.Booking{a, b})

	require.Len(t, chains, 2)
	assert.Equal(t, "single:1", chains[0].Key)
	assert.Equal(t, "single:2", chains[1].Key)
}
