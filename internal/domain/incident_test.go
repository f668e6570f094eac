package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIncidentTransitions проверяет жизненный цикл инцидента
func TestIncidentTransitions(t *testing.T) {
	tests := []struct {
		status       IncidentStatus
		canResolve   bool
		canClose     bool
		canBlock     bool
		isTerminal   bool
	}{
		{status: IncidentOpen, canResolve: true, canClose: false, canBlock: true, isTerminal: false},
		{status: IncidentInProgress, canResolve: true, canClose: false, canBlock: true, isTerminal: false},
		{status: IncidentResolved, canResolve: false, canClose: true, canBlock: false, isTerminal: false},
		{status: IncidentClosed, canResolve: false, canClose: false, canBlock: false, isTerminal: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			i := &Incident{Status: tt.status}
			assert.Equal(t, tt.canResolve, i.CanBeResolved())
			assert.Equal(t, tt.canClose, i.CanBeClosed())
			assert.Equal(t, tt.canBlock, i.CanBeBlocked())
			assert.Equal(t, tt.isTerminal, i.IsTerminal())
		})
	}
}
