// Package srd looks up reference spells in the D&D 5e SRD API
package srd

//go:generate mockgen -destination=mock/mock_client.go -package=srdmock github.com/KirkDiggler/dnd-document-parser/internal/clients/srd Client

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
)

// notFoundStatus is how the dnd5e-api client reports a missing index
const notFoundStatus = "unexpected status code: 404"

var (
	apostrophes = strings.NewReplacer("'", "", "’", "")
	nonSlug     = regexp.MustCompile(`[^a-z0-9]+`)
)

// Key converts a spell name to its SRD index, e.g. "Melf's Acid Arrow"
// becomes "melfs-acid-arrow"
func Key(name string) string {
	slug := apostrophes.Replace(strings.ToLower(name))
	slug = nonSlug.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Client fetches reference data from the SRD
type Client interface {
	GetSpell(ctx context.Context, name string) (*SpellData, error)
}

// SpellData is the part of an SRD spell the parser can compare against
type SpellData struct {
	Key           string
	Name          string
	Level         int
	School        string
	Ritual        bool
	Concentration bool
	Classes       []string
}

// spellGetter is the one call the client makes on the dnd5e-api client
type spellGetter interface {
	GetSpell(key string) (*entities.Spell, error)
}

type client struct {
	api spellGetter
}

// Config holds configuration for the SRD client
type Config struct {
	BaseURL     string
	HTTPTimeout time.Duration
	CacheTTL    time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.HTTPTimeout < 0 || cfg.CacheTTL < 0 {
		return errors.InvalidArgument("durations must not be negative")
	}
	return nil
}

// New creates a cached SRD client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to create D&D 5e API client")
	}

	return &client{api: dnd5e.NewCachedClient(base, cfg.CacheTTL)}, nil
}

func (c *client) GetSpell(ctx context.Context, name string) (*SpellData, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "spell lookup canceled")
	}

	key := Key(name)
	if key == "" {
		return nil, errors.InvalidArgumentf("spell name %q has no SRD key", name)
	}

	spell, err := c.api.GetSpell(key)
	if err != nil && strings.Contains(err.Error(), notFoundStatus) {
		return nil, errors.NotFoundf("spell %s (api: %s) not in the SRD", name, key).WithCause(err)
	}
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get spell %s (api: %s)", name, key)
	}
	if spell == nil {
		return nil, errors.NotFoundf("spell %s (api: %s) not in the SRD", name, key)
	}

	return convertSpell(spell), nil
}

func convertSpell(spell *entities.Spell) *SpellData {
	data := &SpellData{
		Key:           spell.Key,
		Name:          spell.Name,
		Level:         spell.SpellLevel,
		Ritual:        spell.Ritual,
		Concentration: spell.Concentration,
	}
	if spell.SpellSchool != nil {
		data.School = strings.ToLower(spell.SpellSchool.Name)
	}
	for _, class := range spell.SpellClasses {
		if class != nil {
			data.Classes = append(data.Classes, strings.ToLower(class.Name))
		}
	}
	return data
}
