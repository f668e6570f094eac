package models

import (
	"github.com/m04kA/UDP-ReservationService/internal/domain"
)

// Request модели

// CreateSpaceRequest запрос на создание пространства
type CreateSpaceRequest struct {
	ActorID     int64   `json:"-"`
	Name        string  `json:"name"`
	Kind        string  `json:"kind"`
	Capacity    int     `json:"capacity"`
	Location    string  `json:"location"`
	Description *string `json:"description,omitempty"`
}

// UpdateSpaceRequest запрос на обновление пространства
// Указываются только изменяемые поля
type UpdateSpaceRequest struct {
	ActorID     int64   `json:"-"`
	SpaceID     int64   `json:"-"`
	Name        *string `json:"name,omitempty"`
	Kind        *string `json:"kind,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ListSpacesRequest запрос на получение списка пространств
type ListSpacesRequest struct {
	Kind            *string `json:"kind,omitempty"`
	IncludeInactive bool    `json:"includeInactive,omitempty"`
}

// Response модели

// SpaceResponse ответ с данными пространства
type SpaceResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Kind        string  `json:"kind"`
	Capacity    int     `json:"capacity"`
	Location    string  `json:"location"`
	Description *string `json:"description,omitempty"`
	Active      bool    `json:"active"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// SpaceListResponse ответ со списком пространств
type SpaceListResponse struct {
	Spaces []*SpaceResponse `json:"spaces"`
	Total  int              `json:"total"`
}

// FromDomainSpace конвертирует domain модель в response
func FromDomainSpace(s *domain.Space) *SpaceResponse {
	return &SpaceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Kind:        string(s.Kind),
		Capacity:    s.Capacity,
		Location:    s.Location,
		Description: s.Description,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt.Format(domain.DateTimeFormat),
		UpdatedAt:   s.UpdatedAt.Format(domain.DateTimeFormat),
	}
}

// FromDomainSpaceList конвертирует список domain моделей в response
func FromDomainSpaceList(spaces []*domain.Space) *SpaceListResponse {
	out := make([]*SpaceResponse, 0, len(spaces))
	for _, s := range spaces {
		out = append(out, FromDomainSpace(s))
	}
	return &SpaceListResponse{Spaces: out, Total: len(out)}
}
