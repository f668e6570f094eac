package get_available_spaces

import (
	"github.com/m04kA/UDP-ReservationService/internal/domain"
	getAvailableSpaces "github.com/m04kA/UDP-ReservationService/internal/usecase/get_available_spaces"
)

// SpaceInfoResponse данные свободного пространства
type SpaceInfoResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Capacity int    `json:"capacity"`
	Location string `json:"location"`
}

// AvailableSpacesResponse HTTP response model
type AvailableSpacesResponse struct {
	Start  string               `json:"start"`
	End    string               `json:"end"`
	Spaces []*SpaceInfoResponse `json:"spaces"`
	Total  int                  `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAvailableSpaces.Response) *AvailableSpacesResponse {
	spaces := make([]*SpaceInfoResponse, 0, len(resp.Spaces))
	for _, s := range resp.Spaces {
		spaces = append(spaces, &SpaceInfoResponse{
			ID:       s.ID,
			Name:     s.Name,
			Kind:     s.Kind,
			Capacity: s.Capacity,
			Location: s.Location,
		})
	}

	return &AvailableSpacesResponse{
		Start:  resp.Start.Format(domain.DateTimeFormat),
		End:    resp.End.Format(domain.DateTimeFormat),
		Spaces: spaces,
		Total:  len(spaces),
	}
}
