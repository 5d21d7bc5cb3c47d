package render_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRangeTooWide возвращается, когда запрошенный диапазон дат
	// превышает максимальное окно календаря
	ErrRangeTooWide = errors.New("date range is too wide")

	// ErrFetchFailed возвращается, когда окно не удалось получить и в
	// кэше нет последней удачной модели для деградации
	ErrFetchFailed = errors.New("failed to fetch calendar window")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("render_calendar: internal error")
)
