package catalog

import "context"

// Repository holds the adaptation catalog in insertion order.
//
// Catalog mutations are total: updating or deleting an ID that does not
// exist is a silent no-op, reported through the bool return so callers
// can log it. Missing entries are never an error condition.
type Repository interface {
	ListAdaptations(ctx context.Context) []Adaptation
	GetAdaptation(ctx context.Context, id string) (Adaptation, bool)
	AddAdaptation(ctx context.Context, a Adaptation)
	UpdateAdaptation(ctx context.Context, a Adaptation) bool
	DeleteAdaptation(ctx context.Context, id string) bool
	CountAdaptations(ctx context.Context) int
}
