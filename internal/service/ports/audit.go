package ports

import "context"

// AuditRecorder appends admission decisions to the audit trail.
// Recording is best-effort: implementations log failures and never let
// them reach the admission path.
type AuditRecorder interface {
	Record(ctx context.Context, event, actorID, resourceID string, metadata map[string]any)
}
