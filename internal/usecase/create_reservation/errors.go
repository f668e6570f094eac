package create_reservation

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_reservation: user not found")

	// ErrAccessDenied возвращается, когда пользователь не может создавать резервации
	ErrAccessDenied = errors.New("create_reservation: access denied")

	// ErrSpaceNotFound возвращается, когда пространство не найдено
	ErrSpaceNotFound = errors.New("create_reservation: space not found")

	// ErrSpaceInactive возвращается, когда пространство деактивировано
	ErrSpaceInactive = errors.New("create_reservation: space is inactive")

	// ErrStartInPast возвращается, когда начало резервации в прошлом
	ErrStartInPast = errors.New("create_reservation: start is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает окно планирования
	ErrDateTooFarInFuture = errors.New("create_reservation: date is too far in the future")

	// ErrDurationTooLong возвращается, когда длительность превышает лимит политики
	ErrDurationTooLong = errors.New("create_reservation: duration exceeds the allowed maximum")

	// ErrOutsideOperatingHours возвращается, когда интервал выходит за рабочие часы
	ErrOutsideOperatingHours = errors.New("create_reservation: interval is outside operating hours")

	// ErrTooManyActiveReservations возвращается при превышении лимита активных заявок
	ErrTooManyActiveReservations = errors.New("create_reservation: too many active reservations")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с занятым
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
