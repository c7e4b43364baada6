package testutils

// Documents shared by the batch and command tests. GoblinDocument parses
// cleanly and its printed numbers agree with the ones the engine derives.
const (
	GoblinDocument = `> ## Goblin
> *Small humanoid (goblinoid), neutral evil*
___
> - **Armor Class** 15 (leather armor, shield)
> - **Hit Points** 7 (2d6)
> - **Speed** 30 ft.
___
> |STR|DEX|CON|INT|WIS|CHA|
> |:---:|:---:|:---:|:---:|:---:|:---:|
> |8 (-1)|14 (+2)|10 (+0)|10 (+0)|8 (-1)|8 (-1)|
___
> - **Skills** Stealth +6
> - **Senses** darkvision 60 ft., passive Perception 9
> - **Languages** Common, Goblin
> - **Challenge** 1/4 (50 XP)
___
> ### Actions
> ***Scimitar.*** *Melee Weapon Attack:* +4 to hit, reach 5 ft., one target. *Hit:* 5 (1d6 + 2) slashing damage.
`

	// BrokenGoblinDocument fails at the hit points line
	BrokenGoblinDocument = `> ## Goblin
> *Small humanoid (goblinoid), neutral evil*
___
> - **Armor Class** 15 (leather armor, shield)
> - **Hit Points** seven
> - **Speed** 30 ft.
___
> |STR|DEX|CON|INT|WIS|CHA|
> |:---:|:---:|:---:|:---:|:---:|:---:|
> |8 (-1)|14 (+2)|10 (+0)|10 (+0)|8 (-1)|8 (-1)|
___
> - **Senses** passive Perception 9
> - **Languages** Common
> - **Challenge** 1/4 (50 XP)
`

	LightDocument = `#### Light
*Evocation cantrip*
___
- **Casting Time:** 1 action
- **Range:** Touch
- **Components:** V, M (a firefly or phosphorescent moss)
- **Duration:** 1 hour
- **Classes:** Bard, Cleric, Sorcerer, Wizard
___
You touch one object that is no larger than 10 feet in any dimension.
`
)
