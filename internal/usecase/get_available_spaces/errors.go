package get_available_spaces

import "errors"

var (
	// ErrInvalidTimeRange возвращается при некорректном интервале
	ErrInvalidTimeRange = errors.New("get_available_spaces: invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_spaces: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_spaces: internal error")
)
