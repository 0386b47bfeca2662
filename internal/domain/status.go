package domain

// Lifecycle status values. Existence in the store is tracked separately:
// a soft-deleted document keeps its record with Status set to StatusDeleted.
const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
	StatusNew     = "new"
)
