package normalization

import (
	"context"

	"github.com/Cour-de-cassation/juritj-collect/internal/decisions"
)

// ListPage is one page of pending staging keys. A non-nil NextMarker
// means more keys remain; pass it back to List to continue.
type ListPage struct {
	Keys       []string
	NextMarker *string
}

// StagingStore is the object-store contract consumed by the pipeline.
// List and Get operate on the staging area; PutNormalized writes to
// the normalized area; Delete removes the staged original and is the
// pipeline's sole commit signal.
type StagingStore interface {
	List(ctx context.Context, marker string) (*ListPage, error)
	Get(ctx context.Context, key string) (*decisions.RawDecision, error)
	PutNormalized(ctx context.Context, key string, dec *decisions.NormalizedDecision) error
	Delete(ctx context.Context, key string) error
}

// MetadataStore persists decision metadata keyed by the generated
// identifier. Re-running the same item overwrites, never appends.
type MetadataStore interface {
	Upsert(ctx context.Context, id string, meta decisions.Metadata) error
}
