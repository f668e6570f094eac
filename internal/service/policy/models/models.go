package models

import (
	"github.com/m04kA/UDP-ReservationService/internal/domain"
)

// UpdatePolicyRequest запрос на изменение политики резервирования
// Указываются только изменяемые поля
type UpdatePolicyRequest struct {
	ActorID               int64   `json:"-"`
	AdvanceWindowDays     *int    `json:"advanceWindowDays,omitempty"`
	MaxActiveReservations *int    `json:"maxActiveReservations,omitempty"`
	MaxDurationHours      *int    `json:"maxDurationHours,omitempty"`
	OpeningTime           *string `json:"openingTime,omitempty"`
	ClosingTime           *string `json:"closingTime,omitempty"`
}

// PolicyResponse ответ с текущей политикой резервирования
type PolicyResponse struct {
	AdvanceWindowDays     int    `json:"advanceWindowDays"`
	MaxActiveReservations int    `json:"maxActiveReservations"`
	MaxDurationHours      int    `json:"maxDurationHours"`
	OpeningTime           string `json:"openingTime"`
	ClosingTime           string `json:"closingTime"`
	UpdatedAt             string `json:"updatedAt"`
}

// FromDomainPolicy конвертирует domain модель в response
func FromDomainPolicy(p *domain.ReservationPolicy) *PolicyResponse {
	return &PolicyResponse{
		AdvanceWindowDays:     p.AdvanceWindowDays,
		MaxActiveReservations: p.MaxActiveReservations,
		MaxDurationHours:      p.MaxDurationHours,
		OpeningTime:           p.OpeningTime.String(),
		ClosingTime:           p.ClosingTime.String(),
		UpdatedAt:             p.UpdatedAt.Format(domain.DateTimeFormat),
	}
}
