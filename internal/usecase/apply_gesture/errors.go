package apply_gesture

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBookingNotFound возвращается, когда целевое бронирование
	// исчезло на стороне системы записи
	ErrBookingNotFound = errors.New("booking not found")

	// ErrUpdateConflict возвращается, когда система записи отклонила
	// новое время из-за пересечения; серверное время остается
	// авторитетным, откат на клиенте не хранится
	ErrUpdateConflict = errors.New("booking update conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("apply_gesture: internal error")
)
