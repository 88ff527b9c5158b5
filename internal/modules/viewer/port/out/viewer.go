package out

import (
	"context"

	"mpt/internal/modules/viewer/domain"
)

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

// Host drives an external viewer process.
type Host interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	Render(ctx context.Context, manifest domain.Manifest, input domain.RenderRequest) (domain.RenderResult, error)
}

// ContentStore reads tutorial problem files from the course directory.
type ContentStore interface {
	Read(ctx context.Context, file string) (string, error)
}
