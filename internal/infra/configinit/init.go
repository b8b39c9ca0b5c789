// Package configinit writes a starter config file.
package configinit

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/martinmr/iching/internal/domain"
	"github.com/martinmr/iching/internal/infra/configfinder"
	"github.com/martinmr/iching/internal/ports"
)

//go:embed templates/iching.yaml
var templatesFS embed.FS

const templatePath = "templates/iching.yaml"

type Initializer struct {
	FileName string
}

var _ ports.ConfigInitializer = (*Initializer)(nil)

func NewInitializer() *Initializer {
	return &Initializer{FileName: configfinder.FileName}
}

// Init writes the config template into dir and returns its path. An existing
// file is kept unless force is set. The file may hold an API key, so it is
// private to the user and listed in an existing .gitignore.
func (i *Initializer) Init(dir string, force bool) (string, error) {
	root := filepath.Clean(dir)
	dst := filepath.Join(root, i.FileName)

	if !force {
		if _, err := os.Stat(dst); err == nil {
			return dst, &domain.OpError{
				Op:   "configinit.init",
				Kind: domain.KindInvalidInput,
				Path: dst,
				Err:  fmt.Errorf("config file exists (use --force to overwrite): %w", domain.ErrInvalidInput),
			}
		}
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", initError(dst, err)
	}

	b, err := templatesFS.ReadFile(templatePath)
	if err != nil {
		return "", initError(dst, err)
	}
	if err := os.WriteFile(dst, b, 0o600); err != nil {
		return "", initError(dst, err)
	}
	// WriteFile keeps the mode of a file it overwrites.
	if err := os.Chmod(dst, 0o600); err != nil {
		return "", initError(dst, err)
	}

	if err := ensureGitignore(root, i.FileName); err != nil {
		return "", initError(filepath.Join(root, ".gitignore"), err)
	}
	return dst, nil
}

// Template is the file Init writes.
func Template() []byte {
	b, _ := templatesFS.ReadFile(templatePath)
	return b
}

func initError(path string, err error) error {
	return &domain.OpError{
		Op:   "configinit.init",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  err,
	}
}

// ensureGitignore appends entry to root/.gitignore when that file exists and
// does not list it yet. Directories without a .gitignore are left alone.
func ensureGitignore(root, entry string) error {
	const header = "# iching"

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}
	if present[entry] || present["/"+entry] {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 32)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	out.WriteString(entry)
	out.WriteByte('\n')

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
