package chain

import (
	"sort"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Group группирует плоский список бронирований в цепочки по ключу
// ChainKey ("chain:<token>" либо "single:<id>") и выбирает master-часть
// каждой цепочки
//
// Group - тотальная функция: любой корректный список бронирований дает
// валидный результат, одиночное бронирование образует цепочку из одной
// части. Каждое бронирование попадает ровно в одну цепочку
//
// Порядок частей внутри цепочки - по возрастанию StartAt; это
// канонический порядок, на который полагаются все последующие слои.
// Порядок цепочек в результате - по StartAt самой ранней части
// (при равенстве - по ключу), чтобы раскладка была детерминированной
func Group(bookings []*domain.Booking) []domain.Chain {
	partsByKey := make(map[string][]*domain.Booking)
	keys := make([]string, 0)

	for _, b := range bookings {
		key := b.ChainKey()
		if _, seen := partsByKey[key]; !seen {
			keys = append(keys, key)
		}
		partsByKey[key] = append(partsByKey[key], b)
	}

	chains := make([]domain.Chain, 0, len(keys))
	for _, key := range keys {
		parts := partsByKey[key]

		sort.SliceStable(parts, func(i, j int) bool {
			if !parts[i].StartAt.Equal(parts[j].StartAt) {
				return parts[i].StartAt.Before(parts[j].StartAt)
			}
			return parts[i].ID < parts[j].ID
		})

		chains = append(chains, domain.Chain{
			Key:    key,
			Parts:  parts,
			Master: selectMaster(parts),
		})
	}

	sort.SliceStable(chains, func(i, j int) bool {
		si, sj := chains[i].Parts[0].StartAt, chains[j].Parts[0].StartAt
		if !si.Equal(sj) {
			return si.Before(sj)
		}
		return chains[i].Key < chains[j].Key
	})

	return chains
}

// selectMaster выбирает master-часть цепочки: часть с ценовыми полями,
// если такая есть, иначе самая ранняя часть
func selectMaster(parts []*domain.Booking) *domain.Booking {
	for _, p := range parts {
		if p.HasPricing() {
			return p
		}
	}
	return parts[0]
}
