package tui

import (
	"context"
	"errors"

	"github.com/martinmr/iching/internal/domain"
)

func userMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "Cast timed out"
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindSourceUnavailable:
			if oe.Path != "" {
				return "Randomness service unavailable (" + oe.Path + ")"
			}
			return "Randomness service unavailable"
		case domain.KindInvalidInput:
			return "Invalid input"
		case domain.KindNotFound, domain.KindOutOfRange:
			return "Hexagram not found"
		case domain.KindInvalidConfig:
			return "Invalid config"
		}
	}
	return "Unexpected error (see logs)"
}
