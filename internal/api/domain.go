package api

import (
	"github.com/Cour-de-cassation/juritj-collect/internal/decisions"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Decisions decisions.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	decisionsSystem := decisions.New(
		runtime.Database.Connection(),
		runtime.RawStorage,
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Decisions: decisionsSystem,
	}
}
