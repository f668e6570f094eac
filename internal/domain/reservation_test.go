package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(DateTimeFormat, value)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", value, err)
	}
	return parsed
}

// TestOverlaps проверяет пересечение полуоткрытых интервалов [start, end)
func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{
			name:   "identical intervals overlap",
			aStart: "2026-03-15 09:00:00", aEnd: "2026-03-15 10:00:00",
			bStart: "2026-03-15 09:00:00", bEnd: "2026-03-15 10:00:00",
			want: true,
		},
		{
			name:   "partial overlap conflicts",
			aStart: "2026-03-15 09:00:00", aEnd: "2026-03-15 10:00:00",
			bStart: "2026-03-15 09:30:00", bEnd: "2026-03-15 10:30:00",
			want: true,
		},
		{
			name:   "contained interval conflicts",
			aStart: "2026-03-15 09:00:00", aEnd: "2026-03-15 12:00:00",
			bStart: "2026-03-15 10:00:00", bEnd: "2026-03-15 11:00:00",
			want: true,
		},
		{
			name:   "touching boundaries do not overlap",
			aStart: "2026-03-15 09:00:00", aEnd: "2026-03-15 10:00:00",
			bStart: "2026-03-15 10:00:00", bEnd: "2026-03-15 11:00:00",
			want: false,
		},
		{
			name:   "touching boundaries reversed order",
			aStart: "2026-03-15 10:00:00", aEnd: "2026-03-15 11:00:00",
			bStart: "2026-03-15 09:00:00", bEnd: "2026-03-15 10:00:00",
			want: false,
		},
		{
			name:   "disjoint intervals do not overlap",
			aStart: "2026-03-15 08:00:00", aEnd: "2026-03-15 09:00:00",
			bStart: "2026-03-15 12:00:00", bEnd: "2026-03-15 13:00:00",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(
				mustParse(t, tt.aStart), mustParse(t, tt.aEnd),
				mustParse(t, tt.bStart), mustParse(t, tt.bEnd),
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestCanTransitionTo проверяет односторонний автомат статусов
func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{name: "pending to approved", from: StatusPending, to: StatusApproved, want: true},
		{name: "pending to rejected", from: StatusPending, to: StatusRejected, want: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, want: true},
		{name: "approved to cancelled", from: StatusApproved, to: StatusCancelled, want: true},
		{name: "approved to rejected forbidden", from: StatusApproved, to: StatusRejected, want: false},
		{name: "approved to pending forbidden", from: StatusApproved, to: StatusPending, want: false},
		{name: "rejected is terminal", from: StatusRejected, to: StatusCancelled, want: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusApproved, want: false},
		{name: "block never transitions", from: StatusBlock, to: StatusCancelled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Reservation{Status: tt.from}
			assert.Equal(t, tt.want, r.CanTransitionTo(tt.to))
		})
	}
}

// TestReservationPredicates проверяет предикаты статусов
func TestReservationPredicates(t *testing.T) {
	tests := []struct {
		status       ReservationStatus
		isBlocking   bool
		isActive     bool
		canBeDecided bool
		canCancel    bool
	}{
		{status: StatusPending, isBlocking: false, isActive: true, canBeDecided: true, canCancel: true},
		{status: StatusApproved, isBlocking: true, isActive: true, canBeDecided: false, canCancel: true},
		{status: StatusRejected, isBlocking: false, isActive: false, canBeDecided: false, canCancel: false},
		{status: StatusCancelled, isBlocking: false, isActive: false, canBeDecided: false, canCancel: false},
		{status: StatusBlock, isBlocking: true, isActive: false, canBeDecided: false, canCancel: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			r := &Reservation{Status: tt.status}
			assert.Equal(t, tt.isBlocking, r.IsBlocking())
			assert.Equal(t, tt.isActive, r.IsActive())
			assert.Equal(t, tt.canBeDecided, r.CanBeDecided())
			assert.Equal(t, tt.canCancel, r.CanBeCancelled())
		})
	}
}
