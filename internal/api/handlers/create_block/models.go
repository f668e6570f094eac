package create_block

import (
	"time"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	createBlock "github.com/m04kA/UDP-ReservationService/internal/usecase/create_block"
)

// CreateBlockRequest HTTP request model
type CreateBlockRequest struct {
	SpaceID int64   `json:"spaceId"`
	Start   string  `json:"start"`
	End     string  `json:"end"`
	Reason  *string `json:"reason,omitempty"`
}

// BlockResponse HTTP response model
type BlockResponse struct {
	ID        int64   `json:"id"`
	SpaceID   int64   `json:"spaceId"`
	Start     string  `json:"start"`
	End       string  `json:"end"`
	Status    string  `json:"status"`
	Reason    *string `json:"reason,omitempty"`
	CreatedBy int64   `json:"createdBy"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBlockRequest) ToUseCaseRequest(actorID int64) (*createBlock.Request, error) {
	start, err := time.Parse(domain.DateTimeFormat, r.Start)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(domain.DateTimeFormat, r.End)
	if err != nil {
		return nil, err
	}

	return &createBlock.Request{
		ActorID: actorID,
		SpaceID: r.SpaceID,
		Start:   start,
		End:     end,
		Reason:  r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createBlock.Response) *BlockResponse {
	return &BlockResponse{
		ID:        resp.ID,
		SpaceID:   resp.SpaceID,
		Start:     resp.Start.Format(domain.DateTimeFormat),
		End:       resp.End.Format(domain.DateTimeFormat),
		Status:    resp.Status,
		Reason:    resp.Reason,
		CreatedBy: resp.CreatedBy,
	}
}
