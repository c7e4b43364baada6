package srd

import (
	"context"
	goerrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
)

type mockSpellGetter struct {
	mock.Mock
}

func (m *mockSpellGetter) GetSpell(key string) (*entities.Spell, error) {
	args := m.Called(key)
	spell, _ := args.Get(0).(*entities.Spell)
	return spell, args.Error(1)
}

type ClientTestSuite struct {
	suite.Suite
	api    *mockSpellGetter
	client *client
	ctx    context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.api = &mockSpellGetter{}
	s.client = &client{api: s.api}
	s.ctx = context.Background()
}

func (s *ClientTestSuite) TearDownTest() {
	s.api.AssertExpectations(s.T())
}

func (s *ClientTestSuite) TestKey() {
	testCases := []struct {
		name     string
		expected string
	}{
		{name: "Fireball", expected: "fireball"},
		{name: "Melf's Acid Arrow", expected: "melfs-acid-arrow"},
		{name: "Tasha’s Hideous Laughter", expected: "tashas-hideous-laughter"},
		{name: "  Power Word Kill ", expected: "power-word-kill"},
		{name: "Antipathy/Sympathy", expected: "antipathy-sympathy"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, Key(tc.name))
		})
	}
}

func (s *ClientTestSuite) TestGetSpell() {
	s.api.On("GetSpell", "fireball").Return(&entities.Spell{
		Key:         "fireball",
		Name:        "Fireball",
		SpellLevel:  3,
		SpellSchool: &entities.ReferenceItem{Key: "evocation", Name: "Evocation"},
		SpellClasses: []*entities.ReferenceItem{
			{Key: "sorcerer", Name: "Sorcerer"},
			{Key: "wizard", Name: "Wizard"},
		},
	}, nil)

	actual, err := s.client.GetSpell(s.ctx, "Fireball")
	s.Require().NoError(err)
	s.Assert().Equal(&SpellData{
		Key:     "fireball",
		Name:    "Fireball",
		Level:   3,
		School:  "evocation",
		Classes: []string{"sorcerer", "wizard"},
	}, actual)
}

func (s *ClientTestSuite) TestGetSpellRitualConcentration() {
	s.api.On("GetSpell", "detect-magic").Return(&entities.Spell{
		Key:           "detect-magic",
		Name:          "Detect Magic",
		SpellLevel:    1,
		Ritual:        true,
		Concentration: true,
	}, nil)

	actual, err := s.client.GetSpell(s.ctx, "Detect Magic")
	s.Require().NoError(err)
	s.Assert().True(actual.Ritual)
	s.Assert().True(actual.Concentration)
	s.Assert().Empty(actual.School)
}

func (s *ClientTestSuite) TestGetSpellErrors() {
	s.Run("api failure", func() {
		cause := goerrors.New("connection refused")
		s.api.On("GetSpell", "wish").Return(nil, cause).Once()

		_, err := s.client.GetSpell(s.ctx, "Wish")
		s.Require().Error(err)
		s.Assert().True(errors.IsUnavailable(err))
		s.Assert().ErrorIs(err, cause)
	})

	s.Run("missing", func() {
		s.api.On("GetSpell", "homebrew-bolt").Return(nil, fmt.Errorf("unexpected status code: %d", http.StatusNotFound)).Once()

		_, err := s.client.GetSpell(s.ctx, "Homebrew Bolt")
		s.Assert().True(errors.IsNotFound(err))
	})

	s.Run("empty response", func() {
		s.api.On("GetSpell", "homebrew-bolt").Return(nil, nil).Once()

		_, err := s.client.GetSpell(s.ctx, "Homebrew Bolt")
		s.Assert().True(errors.IsNotFound(err))
	})

	s.Run("empty name", func() {
		_, err := s.client.GetSpell(s.ctx, "'")
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("canceled", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()

		_, err := s.client.GetSpell(ctx, "Fireball")
		s.Assert().Equal(errors.CodeCanceled, errors.GetCode(err))
	})
}

func (s *ClientTestSuite) TestGetSpellStatusCodes() {
	testCases := []struct {
		name     string
		status   int
		notFound bool
	}{
		{name: "not found", status: http.StatusNotFound, notFound: true},
		{name: "server error", status: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			var path string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				path = r.URL.Path
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			c, err := New(&Config{BaseURL: srv.URL + "/"})
			s.Require().NoError(err)

			_, err = c.GetSpell(s.ctx, "Homebrew Bolt")
			s.Require().Error(err)
			s.Assert().Equal("/spells/homebrew-bolt", path)
			s.Assert().Equal(tc.notFound, errors.IsNotFound(err))
			s.Assert().Equal(!tc.notFound, errors.IsUnavailable(err))
		})
	}
}

func (s *ClientTestSuite) TestConfigDefaults() {
	cfg := &Config{}
	s.Require().NoError(cfg.Validate())
	s.Assert().Equal("https://www.dnd5eapi.co/api/2014/", cfg.BaseURL)
	s.Assert().NotZero(cfg.HTTPTimeout)
	s.Assert().NotZero(cfg.CacheTTL)

	_, err := New(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}
