package rpgtoolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
)

func TestCreatureEntity(t *testing.T) {
	creature := &entities.Creature{
		Source: entities.Source{Book: "MM", Page: 166},
		Name:   "Goblin  Boss",
	}

	entity := Wrap(creature)

	assert.Equal(t, "MM/goblin-boss", entity.GetID())
	assert.Equal(t, EntityTypeCreature, entity.GetType())
	assert.Equal(t, creature, entity.(*CreatureEntity).Creature)
}

func TestSpellEntity(t *testing.T) {
	spell := &entities.Spell{Name: "Fireball"}

	entity := Wrap(spell)

	assert.Equal(t, "fireball", entity.GetID())
	assert.Equal(t, EntityTypeSpell, entity.GetType())
	assert.Equal(t, spell, entity.(*SpellEntity).Spell)
}

func TestWrapUnknown(t *testing.T) {
	assert.Nil(t, Wrap("not a record"))
}
