package decisions

import (
	"context"

	"github.com/Cour-de-cassation/juritj-collect/pkg/pagination"
)

// System defines the public contract for decision domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Decision], error)

	Find(ctx context.Context, id string) (*Decision, error)
	Upsert(ctx context.Context, id string, meta Metadata) error
	Collect(ctx context.Context, cmd CollectCommand) (*RawDecision, error)
}
