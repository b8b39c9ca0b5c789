package configfinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/ports"
)

const (
	// FileName is the per-project config file searched for upward.
	FileName = ".iching.yaml"
	userDir  = "iching"
	userFile = "config.yaml"
)

// Finder locates the iching config file: the nearest .iching.yaml at or
// above the start directory, then the per-user config file.
type Finder struct {
	FileName string
	// UserConfigDir returns the per-user config root; an error skips it.
	UserConfigDir func() (string, error)
}

var _ ports.ConfigLocator = (*Finder)(nil)

func NewFinder() *Finder {
	return &Finder{
		FileName:      FileName,
		UserConfigDir: os.UserConfigDir,
	}
}

func (f *Finder) FindConfig(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "configfinder.find",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfinder.find",
			Kind: domain.KindInvalidConfig,
			Path: startDir,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.FileName)
		if isFile(cfgPath) {
			return cfgPath, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			break
		}
		cur = parent
	}

	if cfgPath, err := f.UserPath(); err == nil && isFile(cfgPath) {
		return cfgPath, nil
	}

	return "", &domain.OpError{
		Op:   "configfinder.find",
		Kind: domain.KindNotFound,
		Err:  domain.ErrNotFound,
	}
}

// UserPath is the per-user config file, whether or not it exists.
func (f *Finder) UserPath() (string, error) {
	if f.UserConfigDir == nil {
		return "", &domain.OpError{
			Op:   "configfinder.user_path",
			Kind: domain.KindNotFound,
			Err:  domain.ErrNotFound,
		}
	}
	dir, err := f.UserConfigDir()
	if err != nil || dir == "" {
		return "", &domain.OpError{
			Op:   "configfinder.user_path",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("%w: no user config dir: %v", domain.ErrNotFound, err),
		}
	}
	return filepath.Join(dir, userDir, userFile), nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
