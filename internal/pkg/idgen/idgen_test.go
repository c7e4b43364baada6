package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd-document-parser/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (s *IDGenTestSuite) TestUUIDWithPrefix() {
	id := idgen.NewUUID("run").Generate()

	s.Require().True(strings.HasPrefix(id, "run_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "run_"))
	s.Assert().NoError(err)
}

func (s *IDGenTestSuite) TestUUIDIsUnique() {
	gen := idgen.NewUUID("")
	s.Assert().NotEqual(gen.Generate(), gen.Generate())
}

func (s *IDGenTestSuite) TestSequential() {
	gen := idgen.NewSequential("run")
	s.Assert().Equal("run_1", gen.Generate())
	s.Assert().Equal("run_2", gen.Generate())

	s.Assert().Equal("1", idgen.NewSequential("").Generate())
}
