package models

import (
	"github.com/m04kA/UDP-ReservationService/internal/domain"
)

// Request модели

// ReportIncidentRequest запрос на регистрацию инцидента
type ReportIncidentRequest struct {
	ActorID     int64  `json:"-"`
	SpaceID     int64  `json:"spaceId"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// ResolveIncidentRequest запрос на разрешение инцидента
type ResolveIncidentRequest struct {
	ActorID    int64  `json:"-"`
	IncidentID int64  `json:"-"`
	Solution   string `json:"solution"`
}

// ListIncidentsRequest запрос списка инцидентов
type ListIncidentsRequest struct {
	SpaceID *int64  `json:"spaceId,omitempty"`
	Status  *string `json:"status,omitempty"`
}

// Response модели

// IncidentResponse ответ с данными инцидента
type IncidentResponse struct {
	ID          int64   `json:"id"`
	SpaceID     int64   `json:"spaceId"`
	Kind        string  `json:"kind"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	ReportedBy  int64   `json:"reportedBy"`
	ResolvedBy  *int64  `json:"resolvedBy,omitempty"`
	Solution    *string `json:"solution,omitempty"`
	ReportedAt  string  `json:"reportedAt"`
	ResolvedAt  *string `json:"resolvedAt,omitempty"`
}

// IncidentListResponse ответ со списком инцидентов
type IncidentListResponse struct {
	Incidents []*IncidentResponse `json:"incidents"`
	Total     int                 `json:"total"`
}

// FromDomainIncident конвертирует domain модель в response
func FromDomainIncident(i *domain.Incident) *IncidentResponse {
	resp := &IncidentResponse{
		ID:          i.ID,
		SpaceID:     i.SpaceID,
		Kind:        i.Kind,
		Description: i.Description,
		Status:      string(i.Status),
		ReportedBy:  i.ReportedBy,
		ResolvedBy:  i.ResolvedBy,
		Solution:    i.Solution,
		ReportedAt:  i.ReportedAt.Format(domain.DateTimeFormat),
	}

	if i.ResolvedAt != nil {
		resolvedAt := i.ResolvedAt.Format(domain.DateTimeFormat)
		resp.ResolvedAt = &resolvedAt
	}

	return resp
}

// FromDomainIncidentList конвертирует список domain моделей в response
func FromDomainIncidentList(incidents []*domain.Incident) *IncidentListResponse {
	out := make([]*IncidentResponse, 0, len(incidents))
	for _, i := range incidents {
		out = append(out, FromDomainIncident(i))
	}
	return &IncidentListResponse{Incidents: out, Total: len(out)}
}
