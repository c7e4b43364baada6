package loader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
	"github.com/KirkDiggler/dnd-document-parser/internal/loader"
)

type FilesystemTestSuite struct {
	suite.Suite
	dir    string
	loader *loader.Filesystem
	ctx    context.Context
}

func TestFilesystemSuite(t *testing.T) {
	suite.Run(t, new(FilesystemTestSuite))
}

func (s *FilesystemTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.ctx = context.Background()

	var err error
	s.loader, err = loader.NewFilesystem(&loader.FilesystemConfig{DefaultBook: "MM"})
	s.Require().NoError(err)
}

func (s *FilesystemTestSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.MkdirAll(filepath.Dir(path), 0o755))
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *FilesystemTestSuite) TestNewFilesystemRequiresBook() {
	_, err := loader.NewFilesystem(&loader.FilesystemConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal(errors.StepLoad, errors.GetStep(err))

	_, err = loader.NewFilesystem(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *FilesystemTestSuite) TestLoad() {
	path := s.write("goblin.md", "## Goblin\n")

	out, err := s.loader.Load(s.ctx, &loader.LoadInput{Path: path, Source: entities.Source{Page: 166}})
	s.Require().NoError(err)
	s.Assert().Equal(&loader.Document{
		Path:   path,
		Text:   "## Goblin\n",
		Source: entities.Source{Book: "MM", Page: 166},
	}, out.Document)
}

func (s *FilesystemTestSuite) TestLoadKeepsExplicitBook() {
	path := s.write("fireball.md", "#### Fireball\n")

	out, err := s.loader.Load(s.ctx, &loader.LoadInput{Path: path, Source: entities.Source{Book: "PHB", Page: 241}})
	s.Require().NoError(err)
	s.Assert().Equal(entities.Source{Book: "PHB", Page: 241}, out.Document.Source)
}

func (s *FilesystemTestSuite) TestLoadErrors() {
	_, err := s.loader.Load(s.ctx, &loader.LoadInput{Path: filepath.Join(s.dir, "missing.md")})
	s.Require().Error(err)
	s.Assert().True(errors.IsIO(err))
	s.Assert().Equal(errors.StepLoad, errors.GetStep(err))
	s.Assert().ErrorIs(err, os.ErrNotExist)

	path := s.write("latin1.md", "caf\xe9")
	_, err = s.loader.Load(s.ctx, &loader.LoadInput{Path: path})
	s.Assert().True(errors.IsIO(err))

	_, err = s.loader.Load(s.ctx, &loader.LoadInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err = s.loader.Load(ctx, &loader.LoadInput{Path: path})
	s.Assert().Equal(errors.CodeCanceled, errors.GetCode(err))
}

func (s *FilesystemTestSuite) TestList() {
	s.write("b.md", "")
	s.write("a.txt", "")
	s.write("notes.json", "")
	s.write("monsters/c.MD", "")

	out, err := s.loader.List(s.ctx, &loader.ListInput{Dir: s.dir})
	s.Require().NoError(err)
	s.Assert().Equal([]string{
		filepath.Join(s.dir, "a.txt"),
		filepath.Join(s.dir, "b.md"),
		filepath.Join(s.dir, "monsters", "c.MD"),
	}, out.Paths)

	out, err = s.loader.List(s.ctx, &loader.ListInput{Dir: s.dir, Extensions: []string{".json"}})
	s.Require().NoError(err)
	s.Assert().Equal([]string{filepath.Join(s.dir, "notes.json")}, out.Paths)
}

func (s *FilesystemTestSuite) TestListMissingDir() {
	_, err := s.loader.List(s.ctx, &loader.ListInput{Dir: filepath.Join(s.dir, "nope")})
	s.Require().Error(err)
	s.Assert().True(errors.IsIO(err))
}
