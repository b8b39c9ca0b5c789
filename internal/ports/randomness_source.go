package ports

import "context"

// RandomnessSource supplies uniformly distributed draws.
//
// Draw returns an integer uniform in [0, n). Remote implementations fail with
// a domain.KindSourceUnavailable error and never substitute another source.
type RandomnessSource interface {
	Draw(ctx context.Context, n int) (int, error)
}
