package get_policy_config

import (
	"context"

	"github.com/m04kA/UDP-ReservationService/internal/service/policy/models"
)

type PolicyService interface {
	Get(ctx context.Context) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
