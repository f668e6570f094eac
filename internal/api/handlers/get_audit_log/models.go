package get_audit_log

import (
	"github.com/m04kA/UDP-ReservationService/internal/domain"
)

// AuditEntryResponse запись журнала аудита
type AuditEntryResponse struct {
	ID       int64  `json:"id"`
	Table    string `json:"table"`
	Action   string `json:"action"`
	RecordID int64  `json:"recordId"`
	Before   string `json:"before,omitempty"`
	After    string `json:"after,omitempty"`
	ActorID  int64  `json:"actorId"`
	At       string `json:"at"`
}

// AuditLogResponse ответ со списком записей аудита
type AuditLogResponse struct {
	Entries []*AuditEntryResponse `json:"entries"`
	Total   int                   `json:"total"`
}

// FromDomainEntries конвертирует domain модели в response
func FromDomainEntries(entries []*domain.AuditEntry) *AuditLogResponse {
	out := make([]*AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, &AuditEntryResponse{
			ID:       e.ID,
			Table:    e.Table,
			Action:   e.Action,
			RecordID: e.RecordID,
			Before:   e.Before,
			After:    e.After,
			ActorID:  e.ActorID,
			At:       e.At.Format(domain.DateTimeFormat),
		})
	}
	return &AuditLogResponse{Entries: out, Total: len(out)}
}
