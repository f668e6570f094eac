package approve_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда резервация не найдена
	ErrReservationNotFound = errors.New("approve_reservation: reservation not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("approve_reservation: user not found")

	// ErrAccessDenied возвращается, когда пользователь не администратор
	ErrAccessDenied = errors.New("approve_reservation: access denied")

	// ErrAlreadyDecided возвращается, когда по заявке уже принято решение
	ErrAlreadyDecided = errors.New("approve_reservation: reservation already decided")

	// ErrSlotConflict возвращается, когда интервал уже занят другой
	// одобренной резервацией или блокировкой. Заявка остается в pendiente.
	ErrSlotConflict = errors.New("approve_reservation: slot conflicts with an approved entry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("approve_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_reservation: internal error")
)
