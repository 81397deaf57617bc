package models

// AuditEntry records who changed what, with the before/after values.
type AuditEntry struct {
	ID        int    `json:"id"`
	Entity    string `json:"entity"`
	Action    string `json:"action"`
	EntityID  int    `json:"entity_id"`
	OldValue  string `json:"old_value,omitempty"`
	NewValue  string `json:"new_value,omitempty"`
	ActorID   int    `json:"actor_id"`
	CreatedAt string `json:"created_at,omitempty"`
}
