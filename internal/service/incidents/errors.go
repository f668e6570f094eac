package incidents

import "errors"

var (
	// ErrIncidentNotFound возвращается, когда инцидент не найден
	ErrIncidentNotFound = errors.New("incident not found")

	// ErrSpaceNotFound возвращается, когда пространство не найдено
	ErrSpaceNotFound = errors.New("space not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = errors.New("invalid incident status transition")

	// ErrSolutionRequired возвращается, когда решение инцидента не указано
	ErrSolutionRequired = errors.New("solution description is required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("incidents service: internal error")
)
