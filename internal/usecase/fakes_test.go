package usecase

import (
	"context"
	"errors"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/ports"
)

// --- fakes shared by the use case tests ---

var (
	_ ports.RandomnessSource = (*scriptedSource)(nil)
	_ ports.RandomnessSource = (*blockingSource)(nil)
)

// scriptedSource replays fixed draws; once they run out it returns err.
type scriptedSource struct {
	draws []int
	err   error
	calls int
}

func (s *scriptedSource) Draw(_ context.Context, _ int) (int, error) {
	s.calls++
	if len(s.draws) == 0 {
		if s.err != nil {
			return 0, s.err
		}
		return 0, errors.New("script exhausted")
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v, nil
}

// coinDraws scripts the three coin tosses of each requested line.
func coinDraws(lines ...domain.Line) []int {
	faces := map[domain.Line][]int{
		domain.OldYin:    {0, 0, 0},
		domain.YoungYang: {1, 0, 0},
		domain.YoungYin:  {1, 1, 0},
		domain.OldYang:   {1, 1, 1},
	}
	var out []int
	for _, l := range lines {
		out = append(out, faces[l]...)
	}
	return out
}

// blockingSource waits for cancellation, like a stalled remote service.
type blockingSource struct{}

func (blockingSource) Draw(ctx context.Context, _ int) (int, error) {
	<-ctx.Done()
	return 0, domain.SourceUnavailable("test.draw", "", ctx.Err())
}
