package repo

import (
	"github.com/Gangesh855/factory-ops/internal/models"
)

// AuditRepository is the append-only audit trail sink. Failures here never
// roll back the mutation they describe; the ledger itself is the source of
// truth for stock history.
type AuditRepository interface {
	Log(entry models.AuditEntry) error
}
