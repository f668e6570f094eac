package domain

// Operation identifies a capability-checked action.
// The single table below replaces the per-endpoint role checks of the
// reference system: every service consults Allowed with the acting user's role.
type Operation string

const (
	OpCreateReservation  Operation = "reservation.create"
	OpApproveReservation Operation = "reservation.approve"
	OpRejectReservation  Operation = "reservation.reject"
	OpCancelReservation  Operation = "reservation.cancel"
	OpCreateBlock        Operation = "block.create"
	OpDeleteBlock        Operation = "block.delete"
	OpManageSpaces       Operation = "space.manage"
	OpReportIncident     Operation = "incident.report"
	OpResolveIncident    Operation = "incident.resolve"
	OpCloseIncident      Operation = "incident.close"
	OpUpdatePolicy       Operation = "policy.update"
	OpViewAudit          Operation = "audit.view"
)

// rolePermissions карта возможностей по ролям
// Администратор получает все операции; доступ к собственным ресурсам
// (просмотр, отмена своей резервации) проверяется отдельно по владельцу.
var rolePermissions = map[UserRole]map[Operation]bool{
	RoleStudent: {
		OpCreateReservation: true,
		OpCancelReservation: true,
		OpReportIncident:    true,
	},
	RoleStaff: {
		OpCreateReservation: true,
		OpCancelReservation: true,
		OpReportIncident:    true,
		OpResolveIncident:   true,
	},
	RoleAdmin: {
		OpCreateReservation:  true,
		OpApproveReservation: true,
		OpRejectReservation:  true,
		OpCancelReservation:  true,
		OpCreateBlock:        true,
		OpDeleteBlock:        true,
		OpManageSpaces:       true,
		OpReportIncident:     true,
		OpResolveIncident:    true,
		OpCloseIncident:      true,
		OpUpdatePolicy:       true,
		OpViewAudit:          true,
	},
}

// Allowed reports whether the role holds the capability for the operation
func Allowed(role UserRole, op Operation) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	return perms[op]
}
