// Package logo serves party logo assets from a read-only filesystem.
package logo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/kailas-cloud/loksabha/internal/domain"
	"github.com/kailas-cloud/loksabha/internal/domain/election"
)

const extension = ".png"

// Store resolves <abbreviation>.png inside its filesystem root.
type Store struct {
	fsys fs.FS
}

// New creates a store over fsys.
func New(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// NewDir creates a store rooted at dir on the local filesystem.
func NewDir(dir string) *Store {
	return New(os.DirFS(dir))
}

// Open returns the logo for abbreviation. Names that are not a single path
// element are reported as not found.
func (s *Store) Open(_ context.Context, abbreviation string) (election.Logo, error) {
	if !validName(abbreviation) {
		return election.Logo{}, fmt.Errorf("logo %q: %w", abbreviation, domain.ErrNotFound)
	}

	data, err := fs.ReadFile(s.fsys, abbreviation+extension)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return election.Logo{}, fmt.Errorf("logo %q: %w", abbreviation, domain.ErrNotFound)
		}
		return election.Logo{}, fmt.Errorf("read logo %q: %w", abbreviation, err)
	}
	return election.Logo{Abbreviation: abbreviation, Data: data}, nil
}

// Check verifies the asset root is a readable directory.
func (s *Store) Check(_ context.Context) error {
	if _, err := fs.ReadDir(s.fsys, "."); err != nil {
		return fmt.Errorf("read logo dir: %w", err)
	}
	return nil
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return fs.ValidPath(name + extension)
}
