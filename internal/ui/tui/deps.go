package tui

import (
	"context"
	"log/slog"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/ports"
	"github.com/martinmr/iching/internal/usecase"
)

// Caster casts one reading; usecase.CastReading satisfies it.
type Caster interface {
	Execute(ctx context.Context, req usecase.CastRequest) (domain.Reading, error)
}

type Deps struct {
	Catalog ports.HexagramCatalog
	Caster  Caster
	Method  domain.Method

	Logger *slog.Logger
}
