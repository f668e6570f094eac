package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAllowed проверяет таблицу возможностей по ролям
func TestAllowed(t *testing.T) {
	tests := []struct {
		name string
		role UserRole
		op   Operation
		want bool
	}{
		{name: "student creates reservation", role: RoleStudent, op: OpCreateReservation, want: true},
		{name: "student cancels reservation", role: RoleStudent, op: OpCancelReservation, want: true},
		{name: "student reports incident", role: RoleStudent, op: OpReportIncident, want: true},
		{name: "student cannot approve", role: RoleStudent, op: OpApproveReservation, want: false},
		{name: "student cannot create block", role: RoleStudent, op: OpCreateBlock, want: false},
		{name: "student cannot view audit", role: RoleStudent, op: OpViewAudit, want: false},
		{name: "staff resolves incident", role: RoleStaff, op: OpResolveIncident, want: true},
		{name: "staff cannot close incident", role: RoleStaff, op: OpCloseIncident, want: false},
		{name: "staff cannot manage spaces", role: RoleStaff, op: OpManageSpaces, want: false},
		{name: "staff cannot update policy", role: RoleStaff, op: OpUpdatePolicy, want: false},
		{name: "admin approves reservation", role: RoleAdmin, op: OpApproveReservation, want: true},
		{name: "admin creates block", role: RoleAdmin, op: OpCreateBlock, want: true},
		{name: "admin deletes block", role: RoleAdmin, op: OpDeleteBlock, want: true},
		{name: "admin updates policy", role: RoleAdmin, op: OpUpdatePolicy, want: true},
		{name: "admin views audit", role: RoleAdmin, op: OpViewAudit, want: true},
		{name: "unknown role denied", role: UserRole("visitante"), op: OpCreateReservation, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.role, tt.op))
		})
	}
}

// TestUserPredicates проверяет предикаты пользователя
func TestUserPredicates(t *testing.T) {
	admin := &User{Role: RoleAdmin, Active: true}
	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.CanAct())

	inactive := &User{Role: RoleStudent, Active: false}
	assert.False(t, inactive.IsAdmin())
	assert.False(t, inactive.CanAct())
}
