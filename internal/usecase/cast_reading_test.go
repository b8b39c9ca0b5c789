package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/martinmr/iching/internal/catalog"
	"github.com/martinmr/iching/internal/domain"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newCast(src *scriptedSource) *CastReading {
	return NewCastReading(src, domain.RandomnessLocal, catalog.Default(),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func TestCastReading_AllYoungYang(t *testing.T) {
	y := domain.YoungYang
	src := &scriptedSource{draws: coinDraws(y, y, y, y, y, y)}

	r, err := newCast(src).Execute(context.Background(), CastRequest{
		Question: "  Should I move?  ",
		Method:   domain.MethodCoin,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if r.PrimaryEntry.Number != 1 {
		t.Fatalf("primary = #%d, want #1", r.PrimaryEntry.Number)
	}
	if r.Primary.Pattern().String() != "111111" {
		t.Fatalf("pattern = %s", r.Primary.Pattern())
	}
	if r.HasSecondary() || r.SecondaryEntry != nil {
		t.Fatalf("expected no secondary hexagram")
	}
	if r.ChangingLines == nil || len(r.ChangingLines) != 0 {
		t.Fatalf("changing lines = %#v, want empty slice", r.ChangingLines)
	}
	if r.Question != "Should I move?" {
		t.Fatalf("question = %q", r.Question)
	}
	if r.Method != domain.MethodCoin || r.Randomness != domain.RandomnessLocal {
		t.Fatalf("method/randomness = %s/%s", r.Method, r.Randomness)
	}
	if !r.CastAt.Equal(fixedNow) {
		t.Fatalf("cast at = %v", r.CastAt)
	}
	if src.calls != 18 {
		t.Fatalf("draws = %d, want 18", src.calls)
	}
}

func TestCastReading_AllChanging(t *testing.T) {
	o, n := domain.OldYang, domain.OldYin
	src := &scriptedSource{draws: coinDraws(o, n, o, n, o, n)}

	r, err := newCast(src).Execute(context.Background(), CastRequest{Method: domain.MethodCoin})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if got := r.Primary.Pattern().String(); got != "101010" {
		t.Fatalf("primary pattern = %s, want 101010", got)
	}
	if r.PrimaryEntry.Number != 63 {
		t.Fatalf("primary = #%d, want #63", r.PrimaryEntry.Number)
	}
	if !reflect.DeepEqual(r.ChangingLines, []int{0, 1, 2, 3, 4, 5}) {
		t.Fatalf("changing = %v", r.ChangingLines)
	}
	if !r.HasSecondary() {
		t.Fatalf("expected secondary hexagram")
	}
	if got := r.Secondary.Pattern().String(); got != "010101" {
		t.Fatalf("secondary pattern = %s, want 010101", got)
	}
	if r.SecondaryEntry == nil || r.SecondaryEntry.Number != 64 {
		t.Fatalf("secondary entry = %+v, want #64", r.SecondaryEntry)
	}
	for i, l := range r.Secondary {
		if l.IsChanging() {
			t.Fatalf("secondary line %d is %d, want a young line", i, l)
		}
	}
}

func TestCastReading_YarrowStalks(t *testing.T) {
	// Split offsets 1,1,1 give old yang on every line.
	draws := make([]int, 18)
	for i := range draws {
		draws[i] = 1
	}
	src := &scriptedSource{draws: draws}

	r, err := newCast(src).Execute(context.Background(), CastRequest{Method: domain.MethodYarrowStalks})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if r.PrimaryEntry.Number != 1 || r.SecondaryEntry == nil || r.SecondaryEntry.Number != 2 {
		t.Fatalf("got #%d -> %+v, want #1 -> #2", r.PrimaryEntry.Number, r.SecondaryEntry)
	}
}

func TestCastReading_SourceFailureYieldsNoReading(t *testing.T) {
	y := domain.YoungYang
	src := &scriptedSource{
		draws: coinDraws(y, y, y),
		err:   domain.SourceUnavailable("randomorg.draw", "https://example.invalid", errors.New("quota exhausted")),
	}

	r, err := newCast(src).Execute(context.Background(), CastRequest{Method: domain.MethodCoin})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindSourceUnavailable) {
		t.Fatalf("expected source_unavailable, got %v", err)
	}
	if !reflect.DeepEqual(r, domain.Reading{}) {
		t.Fatalf("expected zero reading, got %+v", r)
	}
}

func TestCastReading_CancelledWhileDrawing(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	uc := NewCastReading(blockingSource{}, domain.RandomnessRemote, catalog.Default())
	_, err := uc.Execute(ctx, CastRequest{Method: domain.MethodYarrowStalks})
	if !errors.Is(err, domain.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected the deadline to be reachable, got %v", err)
	}
}

func TestCastReading_UnknownMethod(t *testing.T) {
	_, err := newCast(&scriptedSource{}).Execute(context.Background(), CastRequest{Method: "tarot"})
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}

func TestCastLines(t *testing.T) {
	uc := newCast(&scriptedSource{})

	lines := domain.Hexagram{9, 6, 9, 6, 9, 6}
	r, err := uc.CastLines(CastRequest{Method: domain.MethodCoin}, lines)
	if err != nil {
		t.Fatalf("CastLines: %v", err)
	}
	if r.PrimaryEntry.Number != 63 || r.SecondaryEntry.Number != 64 {
		t.Fatalf("got #%d -> #%d", r.PrimaryEntry.Number, r.SecondaryEntry.Number)
	}

	_, err = uc.CastLines(CastRequest{}, domain.Hexagram{7, 7, 5, 7, 7, 7})
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}
