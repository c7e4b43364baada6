package rpgtoolkit

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
)

// Entity types reported to rpg-toolkit
const (
	EntityTypeCreature = "creature"
	EntityTypeSpell    = "spell"
)

// CreatureEntity wraps entities.Creature to implement core.Entity interface
type CreatureEntity struct {
	*entities.Creature
}

// GetID returns the creature's book-qualified slug, e.g. "MM/goblin-boss"
func (c *CreatureEntity) GetID() string {
	return entityID(c.Source, c.Name)
}

// GetType returns the entity type for rpg-toolkit
func (c *CreatureEntity) GetType() string {
	return EntityTypeCreature
}

// SpellEntity wraps entities.Spell to implement core.Entity interface
type SpellEntity struct {
	*entities.Spell
}

// GetID returns the spell's book-qualified slug, e.g. "PHB/fireball"
func (s *SpellEntity) GetID() string {
	return entityID(s.Source, s.Name)
}

// GetType returns the entity type for rpg-toolkit
func (s *SpellEntity) GetType() string {
	return EntityTypeSpell
}

// Wrap converts a parsed record to a core.Entity. It returns nil for
// anything that is not a creature or spell.
func Wrap(record any) core.Entity {
	switch r := record.(type) {
	case *entities.Creature:
		return &CreatureEntity{Creature: r}
	case *entities.Spell:
		return &SpellEntity{Spell: r}
	default:
		return nil
	}
}

func entityID(source entities.Source, name string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(name)), "-")
	if source.Book == "" {
		return slug
	}
	return source.Book + "/" + slug
}
