package catalog

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден или помечен удаленным
	ErrResourceNotFound = errors.New("resource not found")

	// ErrDuplicateBayNumber возвращается при попытке создать бокс с занятым номером
	ErrDuplicateBayNumber = errors.New("bay number already exists")

	// ErrDuplicateTeamName возвращается при попытке создать команду с занятым именем
	ErrDuplicateTeamName = errors.New("team name already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog service: internal error")
)
