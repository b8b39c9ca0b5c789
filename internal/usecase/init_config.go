package usecase

import (
	"log/slog"

	"github.com/martinmr/iching/internal/ports"
)

type InitConfig struct {
	initializer ports.ConfigInitializer
	log         *slog.Logger
}

func NewInitConfig(initializer ports.ConfigInitializer, log *slog.Logger) *InitConfig {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &InitConfig{initializer: initializer, log: log}
}

func (uc *InitConfig) Execute(dir string, force bool) (string, error) {
	path, err := uc.initializer.Init(dir, force)
	if err != nil {
		return path, err
	}
	uc.log.Info("config.initialized", "path", path, "force", force)
	return path, nil
}
