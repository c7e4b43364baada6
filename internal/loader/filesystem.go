package loader

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
)

// DefaultExtensions are the document extensions List keeps when none are given
var DefaultExtensions = []string{".md", ".markdown", ".txt"}

// FilesystemConfig configures the filesystem loader
type FilesystemConfig struct {
	// DefaultBook is attached to documents loaded without a book
	DefaultBook string
}

// Validate ensures the configuration is usable
func (c *FilesystemConfig) Validate() error {
	vb := errors.NewValidationBuilder().Step(errors.StepLoad)
	errors.ValidateRequired("DefaultBook", c.DefaultBook, vb)
	return vb.Build()
}

// Filesystem implements Loader on the local filesystem
type Filesystem struct {
	defaultBook string
}

// NewFilesystem creates a filesystem loader
func NewFilesystem(cfg *FilesystemConfig) (*Filesystem, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Filesystem{defaultBook: cfg.DefaultBook}, nil
}

// Load reads one UTF-8 document
func (l *Filesystem) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Path == "" {
		return nil, errors.InvalidArgument("path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "load canceled")
	}

	data, err := os.ReadFile(input.Path)
	if err != nil {
		return nil, errors.IOf("failed to read %s", input.Path).WithCause(err)
	}
	if !utf8.Valid(data) {
		return nil, errors.IOf("%s is not valid UTF-8", input.Path)
	}

	source := input.Source
	if source.Book == "" {
		source.Book = l.defaultBook
	}

	return &LoadOutput{
		Document: &Document{
			Path:   input.Path,
			Text:   string(data),
			Source: source,
		},
	}, nil
}

// List walks a directory tree and returns every document path
func (l *Filesystem) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Dir == "" {
		return nil, errors.InvalidArgument("dir is required")
	}

	extensions := input.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	var paths []string
	err := filepath.WalkDir(input.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !hasExtension(path, extensions) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, errors.IOf("failed to list %s", input.Dir).WithCause(err)
	}

	return &ListOutput{Paths: paths}, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}
