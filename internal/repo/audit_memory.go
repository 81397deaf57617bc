package repo

import (
	"time"

	"github.com/Gangesh855/factory-ops/internal/models"
)

type InMemoryAuditRepository struct {
	entries []models.AuditEntry
}

func NewInMemoryAuditRepository() *InMemoryAuditRepository {
	return &InMemoryAuditRepository{}
}

func (r *InMemoryAuditRepository) Log(entry models.AuditEntry) error {
	entry.ID = len(r.entries) + 1
	entry.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	r.entries = append(r.entries, entry)
	return nil
}

func (r *InMemoryAuditRepository) Entries() []models.AuditEntry {
	return r.entries
}

func (r *InMemoryAuditRepository) Clear() {
	r.entries = nil
}
