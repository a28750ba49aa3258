package enumerate_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("enumerate_slots: invalid input data")

	// ErrInvalidDateRange возвращается, когда конец диапазона раньше начала
	ErrInvalidDateRange = errors.New("enumerate_slots: end date is before start date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("enumerate_slots: internal error")
)
