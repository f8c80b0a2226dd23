package repository

import (
	"context"
	"encoding/json"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

// AuditRepository appends admission decisions to audit_log. Recording is
// best-effort: failures are logged and never returned, so a lost audit row
// cannot revert an admission decision.
type AuditRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
	logger   logger.Logger
}

func NewAuditRepo(db *dbpg.DB, log logger.Logger) *AuditRepository {
	return &AuditRepository{
		db:       db,
		strategy: defaultStrategy(),
		logger:   log,
	}
}

func (r *AuditRepository) Record(ctx context.Context, event, actorID, resourceID string, metadata map[string]any) {
	payload, err := json.Marshal(metadata)
	if err != nil {
		r.logger.Error("audit metadata marshal failed",
			logger.String("event", event),
			logger.String("error", err.Error()),
		)
		payload = []byte("{}")
	}

	query := `INSERT INTO audit_log (event, actor_id, resource_id, metadata)
			  VALUES ($1, $2, $3, $4)`
	if _, err = r.db.ExecWithRetry(ctx, r.strategy, query, event, actorID, resourceID, payload); err != nil {
		r.logger.Error("audit record failed",
			logger.String("event", event),
			logger.String("actor_id", actorID),
			logger.String("resource_id", resourceID),
			logger.String("error", err.Error()),
		)
	}
}
