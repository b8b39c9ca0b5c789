package tui

import "github.com/martinmr/iching/internal/domain"

type castDoneMsg struct {
	reading domain.Reading
	err     error
}
