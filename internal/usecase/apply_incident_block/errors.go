package apply_incident_block

import "errors"

var (
	// ErrIncidentNotFound возвращается, когда инцидент не найден
	ErrIncidentNotFound = errors.New("apply_incident_block: incident not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("apply_incident_block: user not found")

	// ErrAccessDenied возвращается, когда пользователь не администратор
	ErrAccessDenied = errors.New("apply_incident_block: access denied")

	// ErrInvalidTransition возвращается, когда инцидент уже разрешен или закрыт
	ErrInvalidTransition = errors.New("apply_incident_block: incident cannot be blocked")

	// ErrSlotNotAvailable возвращается, когда интервал уже перекрыт блокировкой
	ErrSlotNotAvailable = errors.New("apply_incident_block: interval already blocked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("apply_incident_block: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("apply_incident_block: internal error")
)
