package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	"github.com/m04kA/UDP-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if !req.Start.Before(req.End) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason too long", ErrInvalidInput)
	}

	// Паттерн повторения имеет смысл только для повторяющейся заявки
	if req.RecurrencePattern != nil && !req.Recurring {
		return fmt.Errorf("%w: recurrencePattern requires recurring flag", ErrInvalidInput)
	}
	if req.Recurring && req.RecurrencePattern == nil {
		return fmt.Errorf("%w: recurring reservation requires recurrencePattern", ErrInvalidInput)
	}

	return nil
}

// validateAgainstPolicy проверяет интервал по действующей политике
func validateAgainstPolicy(req *Request, now time.Time, policy *domain.ReservationPolicy) error {
	// Начало не должно быть в прошлом
	if req.Start.Before(now) {
		return ErrStartInPast
	}

	// Окно планирования: заявка не дальше N дней вперед
	if policy.HasAdvanceLimit() {
		maxStart := now.AddDate(0, 0, policy.AdvanceWindowDays)
		if req.Start.After(maxStart) {
			return fmt.Errorf("%w: can only reserve %d days in advance", ErrDateTooFarInFuture, policy.AdvanceWindowDays)
		}
	}

	// Лимит длительности
	if req.End.Sub(req.Start) > policy.MaxDuration() {
		return fmt.Errorf("%w: maximum is %d hours", ErrDurationTooLong, policy.MaxDurationHours)
	}

	// Интервал не должен пересекать полночь: рабочие часы заданы в рамках дня
	if !sameDay(req.Start, req.End) {
		return ErrOutsideOperatingHours
	}

	// Рабочие часы: [hora_apertura, hora_cierre]
	startTime := types.NewTimeString(req.Start)
	endTime := types.NewTimeString(req.End)

	if startTime.IsBefore(policy.OpeningTime) {
		return ErrOutsideOperatingHours
	}
	if policy.ClosingTime.IsBefore(endTime) {
		return ErrOutsideOperatingHours
	}

	return nil
}

// sameDay проверяет, что оба момента приходятся на одну календарную дату
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
