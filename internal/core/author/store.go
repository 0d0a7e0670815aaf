package author

import "context"

// Repository holds the author registry in insertion order.
//
// Like the catalog, mutations are total: updating or deleting an unknown
// ID is a silent no-op reported through the bool return.
type Repository interface {
	ListAuthors(ctx context.Context) []Author
	GetAuthor(ctx context.Context, id string) (Author, bool)
	AddAuthor(ctx context.Context, a Author)
	UpdateAuthor(ctx context.Context, a Author) bool
	DeleteAuthor(ctx context.Context, id string) bool
}
