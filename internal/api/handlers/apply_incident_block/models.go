package apply_incident_block

import (
	"time"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	applyIncidentBlock "github.com/m04kA/UDP-ReservationService/internal/usecase/apply_incident_block"
)

// ApplyIncidentBlockRequest HTTP request model
type ApplyIncidentBlockRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// IncidentBlockResponse HTTP response model
type IncidentBlockResponse struct {
	BlockID               int64   `json:"blockId"`
	IncidentID            int64   `json:"incidentId"`
	SpaceID               int64   `json:"spaceId"`
	Start                 string  `json:"start"`
	End                   string  `json:"end"`
	IncidentStatus        string  `json:"incidentStatus"`
	CancelledReservations []int64 `json:"cancelledReservations"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ApplyIncidentBlockRequest) ToUseCaseRequest(actorID, incidentID int64) (*applyIncidentBlock.Request, error) {
	start, err := time.Parse(domain.DateTimeFormat, r.Start)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(domain.DateTimeFormat, r.End)
	if err != nil {
		return nil, err
	}

	return &applyIncidentBlock.Request{
		ActorID:    actorID,
		IncidentID: incidentID,
		Start:      start,
		End:        end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *applyIncidentBlock.Response) *IncidentBlockResponse {
	return &IncidentBlockResponse{
		BlockID:               resp.BlockID,
		IncidentID:            resp.IncidentID,
		SpaceID:               resp.SpaceID,
		Start:                 resp.Start.Format(domain.DateTimeFormat),
		End:                   resp.End.Format(domain.DateTimeFormat),
		IncidentStatus:        resp.IncidentStatus,
		CancelledReservations: resp.CancelledReservations,
	}
}
