package container

import (
	"context"

	"github.com/google/uuid"

	"github.com/adrianflutur/registry/internal/mode"
	"github.com/adrianflutur/registry/internal/params"
)

type BuilderFunc func(ctx context.Context, r Resolver, p params.Params) (any, error)

type DisposeFunc func(instance any) error

type Resolver interface {
	Resolve(ctx context.Context, key string, p params.Params) (any, error)
	Has(key string) bool
}

// Registration describes one put call.
type Registration struct {
	Key                    string
	Builder                BuilderFunc
	Mode                   mode.Mode
	AllowOneReregistration bool
	OnDispose              DisposeFunc
}

// Registrant is the per-key lifecycle record. Instance is only meaningful
// while Instantiated is set; lazy factories never set it.
type Registrant struct {
	Key                    string
	ID                     uuid.UUID
	Builder                BuilderFunc
	Mode                   mode.Mode
	Instance               any
	Instantiated           bool
	AllowOneReregistration bool
	LastParams             params.Params
	OnDispose              DisposeFunc
	Builds                 int
}

func newRegistrant(reg Registration) *Registrant {
	return &Registrant{
		Key:                    reg.Key,
		ID:                     uuid.New(),
		Builder:                reg.Builder,
		Mode:                   reg.Mode,
		AllowOneReregistration: reg.AllowOneReregistration,
		OnDispose:              reg.OnDispose,
	}
}

// RegistrantInfo is a read-only snapshot of a Registrant.
type RegistrantInfo struct {
	Key                    string
	ID                     string
	Mode                   mode.Mode
	Instantiated           bool
	AllowOneReregistration bool
	LastParams             params.Params
	Builds                 int
}

func (r *Registrant) info() RegistrantInfo {
	return RegistrantInfo{
		Key:                    r.Key,
		ID:                     r.ID.String(),
		Mode:                   r.Mode,
		Instantiated:           r.Instantiated,
		AllowOneReregistration: r.AllowOneReregistration,
		LastParams:             r.LastParams,
		Builds:                 r.Builds,
	}
}
