package out

import (
	"context"

	"mpt/internal/modules/catalog/domain"
)

// CatalogStore loads the catalog from its backing text file. The catalog is
// reparsed on every load; there is no cached or mutable state behind it.
type CatalogStore interface {
	Load(ctx context.Context) (domain.Catalog, error)
}

// CatalogIndexProjector maintains the queryable projection of the catalog.
type CatalogIndexProjector interface {
	Reset(ctx context.Context) error
	UpsertSection(ctx context.Context, ordinal int, section domain.Section) error
}
