package resource

import "errors"

var (
	// ErrBayNotFound возвращается, когда бокс не найден или помечен удаленным
	ErrBayNotFound = errors.New("resource.repository: wash bay not found")

	// ErrTeamNotFound возвращается, когда мобильная команда не найдена или помечена удаленной
	ErrTeamNotFound = errors.New("resource.repository: mobile team not found")

	// ErrDuplicateBayNumber возвращается при попытке создать бокс с занятым номером
	ErrDuplicateBayNumber = errors.New("resource.repository: duplicate bay number")

	// ErrDuplicateTeamName возвращается при попытке создать команду с занятым именем
	ErrDuplicateTeamName = errors.New("resource.repository: duplicate team name")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("resource.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("resource.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("resource.repository: failed to scan row")
)
