package workshopservice

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("workshopservice client: booking not found")

	// ErrBookingConflict возвращается, когда backend отклонил обновление
	// из-за пересечения по боксу или механику (exclusion constraint)
	ErrBookingConflict = errors.New("workshopservice client: booking time conflict")

	// ErrUserNotFound возвращается, когда сотрудник не найден
	ErrUserNotFound = errors.New("workshopservice client: user not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("workshopservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("workshopservice client: invalid response")
)
