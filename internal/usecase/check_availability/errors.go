package check_availability

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не существует или мягко удален.
	// Проверка доступности несуществующего ресурса — ошибка вызывающей стороны,
	// а не "ресурс свободен"
	ErrResourceNotFound = errors.New("check_availability: resource not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
