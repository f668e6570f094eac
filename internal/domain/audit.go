package domain

import "time"

// Audit actions recorded in the auditoria table
const (
	AuditActionCreate     = "crear"
	AuditActionApprove    = "aprobar"
	AuditActionReject     = "rechazar"
	AuditActionCancel     = "cancelar"
	AuditActionUpdate     = "actualizar"
	AuditActionDeactivate = "desactivar"
	AuditActionDelete     = "eliminar"
	AuditActionResolve    = "resolver"
	AuditActionClose      = "cerrar"
	AuditActionBlock      = "bloquear"
)

// AuditEntry represents one append-only record of a state transition.
// Before/After hold JSON snapshots; entries are never mutated or deleted.
type AuditEntry struct {
	ID       int64
	Table    string
	Action   string
	RecordID int64
	Before   string
	After    string
	ActorID  int64
	At       time.Time
}

// AuditFilter narrows audit listings
type AuditFilter struct {
	Table *string
	Since *time.Time
	Limit int
}
