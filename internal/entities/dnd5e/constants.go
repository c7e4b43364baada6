package dnd5e

import "github.com/KirkDiggler/dnd-document-parser/internal/errors"

// Size of a creature
type Size string

// Size constants
const (
	SizeTiny       Size = "tiny"
	SizeSmall      Size = "small"
	SizeMedium     Size = "medium"
	SizeLarge      Size = "large"
	SizeHuge       Size = "huge"
	SizeGargantuan Size = "gargantuan"
)

// CreatureType is the main type of a creature
type CreatureType string

// Creature type constants
const (
	CreatureTypeAberration  CreatureType = "aberration"
	CreatureTypeBeast       CreatureType = "beast"
	CreatureTypeCelestial   CreatureType = "celestial"
	CreatureTypeConstruct   CreatureType = "construct"
	CreatureTypeDragon      CreatureType = "dragon"
	CreatureTypeElemental   CreatureType = "elemental"
	CreatureTypeFey         CreatureType = "fey"
	CreatureTypeFiend       CreatureType = "fiend"
	CreatureTypeGiant       CreatureType = "giant"
	CreatureTypeHumanoid    CreatureType = "humanoid"
	CreatureTypeMonstrosity CreatureType = "monstrosity"
	CreatureTypeOoze        CreatureType = "ooze"
	CreatureTypePlant       CreatureType = "plant"
	CreatureTypeUndead      CreatureType = "undead"
)

// AlignmentOrder is the lawful/chaotic axis
type AlignmentOrder string

// Alignment order constants
const (
	OrderLawful  AlignmentOrder = "lawful"
	OrderNeutral AlignmentOrder = "neutral"
	OrderChaotic AlignmentOrder = "chaotic"
)

// AlignmentMoral is the good/evil axis
type AlignmentMoral string

// Alignment moral constants
const (
	MoralGood    AlignmentMoral = "good"
	MoralNeutral AlignmentMoral = "neutral"
	MoralEvil    AlignmentMoral = "evil"
)

// Ability is one of the six ability scores, keyed by abbreviation
type Ability string

// Ability constants
const (
	AbilityStrength     Ability = "str"
	AbilityDexterity    Ability = "dex"
	AbilityConstitution Ability = "con"
	AbilityIntelligence Ability = "int"
	AbilityWisdom       Ability = "wis"
	AbilityCharisma     Ability = "cha"
)

// Skill is a proficiency skill
type Skill string

// Skill constants
const (
	SkillAcrobatics     Skill = "acrobatics"
	SkillAnimalHandling Skill = "animal handling"
	SkillArcana         Skill = "arcana"
	SkillAthletics      Skill = "athletics"
	SkillDeception      Skill = "deception"
	SkillHistory        Skill = "history"
	SkillInsight        Skill = "insight"
	SkillIntimidation   Skill = "intimidation"
	SkillInvestigation  Skill = "investigation"
	SkillMedicine       Skill = "medicine"
	SkillNature         Skill = "nature"
	SkillPerception     Skill = "perception"
	SkillPerformance    Skill = "performance"
	SkillPersuasion     Skill = "persuasion"
	SkillReligion       Skill = "religion"
	SkillSleightOfHand  Skill = "sleight of hand"
	SkillStealth        Skill = "stealth"
	SkillSurvival       Skill = "survival"
)

// Condition is a status condition
type Condition string

// Condition constants
const (
	ConditionBlinded       Condition = "blinded"
	ConditionCharmed       Condition = "charmed"
	ConditionDeafened      Condition = "deafened"
	ConditionExhaustion    Condition = "exhaustion"
	ConditionFrightened    Condition = "frightened"
	ConditionGrappled      Condition = "grappled"
	ConditionIncapacitated Condition = "incapacitated"
	ConditionInvisible     Condition = "invisible"
	ConditionParalyzed     Condition = "paralyzed"
	ConditionPetrified     Condition = "petrified"
	ConditionPoisoned      Condition = "poisoned"
	ConditionProne         Condition = "prone"
	ConditionRestrained    Condition = "restrained"
	ConditionStunned       Condition = "stunned"
	ConditionUnconscious   Condition = "unconscious"
)

// DamageType is a type of damage
type DamageType string

// Damage type constants
const (
	DamageAcid        DamageType = "acid"
	DamageBludgeoning DamageType = "bludgeoning"
	DamageCold        DamageType = "cold"
	DamageFire        DamageType = "fire"
	DamageForce       DamageType = "force"
	DamageLightning   DamageType = "lightning"
	DamageNecrotic    DamageType = "necrotic"
	DamagePiercing    DamageType = "piercing"
	DamagePoison      DamageType = "poison"
	DamagePsychic     DamageType = "psychic"
	DamageRadiant     DamageType = "radiant"
	DamageSlashing    DamageType = "slashing"
	DamageThunder     DamageType = "thunder"
)

// ActionType is the kind of action a casting time or entry uses
type ActionType string

// Action type constants
const (
	ActionTypeAction      ActionType = "action"
	ActionTypeBonusAction ActionType = "bonus"
	ActionTypeReaction    ActionType = "reaction"
)

// TimeUnit is a unit of game time
type TimeUnit string

// Time unit constants
const (
	TimeUnitRound  TimeUnit = "round"
	TimeUnitMinute TimeUnit = "minute"
	TimeUnitHour   TimeUnit = "hour"
	TimeUnitDay    TimeUnit = "day"
	TimeUnitWeek   TimeUnit = "week"
	TimeUnitYear   TimeUnit = "year"
)

// RangeUnit is a unit of distance
type RangeUnit string

// Range unit constants
const (
	RangeUnitFeet  RangeUnit = "feet"
	RangeUnitMiles RangeUnit = "miles"
)

// TargetShape is the area a ranged spell reaches
type TargetShape string

// Target shape constants
const (
	ShapePoint      TargetShape = "point"
	ShapeRadius     TargetShape = "radius"
	ShapeCone       TargetShape = "cone"
	ShapeCube       TargetShape = "cube"
	ShapeLine       TargetShape = "line"
	ShapeSphere     TargetShape = "sphere"
	ShapeHemisphere TargetShape = "hemisphere"
	ShapeCylinder   TargetShape = "cylinder"
)

// Currency is a coin denomination
type Currency string

// Currency constants
const (
	CurrencyCopper   Currency = "cp"
	CurrencySilver   Currency = "sp"
	CurrencyElectrum Currency = "ep"
	CurrencyGold     Currency = "gp"
	CurrencyPlatinum Currency = "pp"
)

// Class is a character class that can learn spells
type Class string

// Class constants
const (
	ClassArtificer Class = "artificer"
	ClassBarbarian Class = "barbarian"
	ClassBard      Class = "bard"
	ClassCleric    Class = "cleric"
	ClassDruid     Class = "druid"
	ClassFighter   Class = "fighter"
	ClassMonk      Class = "monk"
	ClassPaladin   Class = "paladin"
	ClassRanger    Class = "ranger"
	ClassRogue     Class = "rogue"
	ClassSorcerer  Class = "sorcerer"
	ClassWarlock   Class = "warlock"
	ClassWizard    Class = "wizard"
)

// School is a school of magic
type School string

// School constants
const (
	SchoolAbjuration    School = "abjuration"
	SchoolConjuration   School = "conjuration"
	SchoolDivination    School = "divination"
	SchoolEnchantment   School = "enchantment"
	SchoolEvocation     School = "evocation"
	SchoolIllusion      School = "illusion"
	SchoolNecromancy    School = "necromancy"
	SchoolTransmutation School = "transmutation"
)

// EntryCategory is the section of a stat block an entry belongs to
type EntryCategory string

// Entry category constants
const (
	EntryTraits           EntryCategory = "traits"
	EntryActions          EntryCategory = "actions"
	EntryBonusActions     EntryCategory = "bonus actions"
	EntryReactions        EntryCategory = "reactions"
	EntryLegendaryActions EntryCategory = "legendary actions"
	EntryMythicActions    EntryCategory = "mythic actions"
)

var (
	sizes = newLexicon("size", errors.StepLexiconSize,
		[]Size{SizeTiny, SizeSmall, SizeMedium, SizeLarge, SizeHuge, SizeGargantuan}, nil)

	creatureTypes = newLexicon("creature type", errors.StepLexiconCreatureType,
		[]CreatureType{
			CreatureTypeAberration, CreatureTypeBeast, CreatureTypeCelestial, CreatureTypeConstruct,
			CreatureTypeDragon, CreatureTypeElemental, CreatureTypeFey, CreatureTypeFiend,
			CreatureTypeGiant, CreatureTypeHumanoid, CreatureTypeMonstrosity, CreatureTypeOoze,
			CreatureTypePlant, CreatureTypeUndead,
		}, nil)

	orders = newLexicon("alignment order", errors.StepLexiconOrder,
		[]AlignmentOrder{OrderLawful, OrderNeutral, OrderChaotic}, nil)

	morals = newLexicon("alignment moral", errors.StepLexiconMoral,
		[]AlignmentMoral{MoralGood, MoralNeutral, MoralEvil}, nil)

	abilities = newLexicon("ability", errors.StepLexiconAbility,
		[]Ability{
			AbilityStrength, AbilityDexterity, AbilityConstitution,
			AbilityIntelligence, AbilityWisdom, AbilityCharisma,
		},
		map[string]Ability{
			"strength":     AbilityStrength,
			"dexterity":    AbilityDexterity,
			"constitution": AbilityConstitution,
			"intelligence": AbilityIntelligence,
			"wisdom":       AbilityWisdom,
			"charisma":     AbilityCharisma,
		})

	skills = newLexicon("skill", errors.StepLexiconSkill,
		[]Skill{
			SkillAcrobatics, SkillAnimalHandling, SkillArcana, SkillAthletics, SkillDeception,
			SkillHistory, SkillInsight, SkillIntimidation, SkillInvestigation, SkillMedicine,
			SkillNature, SkillPerception, SkillPerformance, SkillPersuasion, SkillReligion,
			SkillSleightOfHand, SkillStealth, SkillSurvival,
		}, nil)

	conditions = newLexicon("condition", errors.StepLexiconCondition,
		[]Condition{
			ConditionBlinded, ConditionCharmed, ConditionDeafened, ConditionExhaustion,
			ConditionFrightened, ConditionGrappled, ConditionIncapacitated, ConditionInvisible,
			ConditionParalyzed, ConditionPetrified, ConditionPoisoned, ConditionProne,
			ConditionRestrained, ConditionStunned, ConditionUnconscious,
		}, nil)

	damageTypes = newLexicon("damage type", errors.StepLexiconDamageType,
		[]DamageType{
			DamageAcid, DamageBludgeoning, DamageCold, DamageFire, DamageForce,
			DamageLightning, DamageNecrotic, DamagePiercing, DamagePoison, DamagePsychic,
			DamageRadiant, DamageSlashing, DamageThunder,
		}, nil)

	actionTypes = newLexicon("action type", errors.StepLexiconActionType,
		[]ActionType{ActionTypeAction, ActionTypeBonusAction, ActionTypeReaction},
		map[string]ActionType{"bonus action": ActionTypeBonusAction})

	timeUnits = newLexicon("time unit", errors.StepLexiconTimeUnit,
		[]TimeUnit{TimeUnitRound, TimeUnitMinute, TimeUnitHour, TimeUnitDay, TimeUnitWeek, TimeUnitYear},
		map[string]TimeUnit{
			"rounds":  TimeUnitRound,
			"minutes": TimeUnitMinute,
			"hours":   TimeUnitHour,
			"days":    TimeUnitDay,
			"weeks":   TimeUnitWeek,
			"years":   TimeUnitYear,
		})

	rangeUnits = newLexicon("range unit", errors.StepLexiconRangeUnit,
		[]RangeUnit{RangeUnitFeet, RangeUnitMiles},
		map[string]RangeUnit{
			"foot": RangeUnitFeet,
			"ft":   RangeUnitFeet,
			"mile": RangeUnitMiles,
		})

	targetShapes = newLexicon("target shape", errors.StepLexiconTargetShape,
		[]TargetShape{
			ShapePoint, ShapeRadius, ShapeCone, ShapeCube,
			ShapeLine, ShapeSphere, ShapeHemisphere, ShapeCylinder,
		}, nil)

	currencies = newLexicon("currency", errors.StepLexiconCurrency,
		[]Currency{CurrencyCopper, CurrencySilver, CurrencyElectrum, CurrencyGold, CurrencyPlatinum},
		map[string]Currency{
			"copper":   CurrencyCopper,
			"silver":   CurrencySilver,
			"electrum": CurrencyElectrum,
			"gold":     CurrencyGold,
			"platinum": CurrencyPlatinum,
		})

	classes = newLexicon("class", errors.StepLexiconClass,
		[]Class{
			ClassArtificer, ClassBarbarian, ClassBard, ClassCleric, ClassDruid, ClassFighter,
			ClassMonk, ClassPaladin, ClassRanger, ClassRogue, ClassSorcerer, ClassWarlock, ClassWizard,
		}, nil)

	schools = newLexicon("school", errors.StepLexiconSchool,
		[]School{
			SchoolAbjuration, SchoolConjuration, SchoolDivination, SchoolEnchantment,
			SchoolEvocation, SchoolIllusion, SchoolNecromancy, SchoolTransmutation,
		}, nil)

	entryCategories = newLexicon("entry category", errors.StepLexiconEntryCategory,
		[]EntryCategory{
			EntryTraits, EntryActions, EntryBonusActions, EntryReactions,
			EntryLegendaryActions, EntryMythicActions,
		}, nil)
)

// ParseSize looks up a creature size
func ParseSize(s string) (Size, error) { return sizes.parse(s) }

// ParseCreatureType looks up a creature's main type
func ParseCreatureType(s string) (CreatureType, error) { return creatureTypes.parse(s) }

// ParseAlignmentOrder looks up the lawful/chaotic axis
func ParseAlignmentOrder(s string) (AlignmentOrder, error) { return orders.parse(s) }

// ParseAlignmentMoral looks up the good/evil axis
func ParseAlignmentMoral(s string) (AlignmentMoral, error) { return morals.parse(s) }

// ParseAbility accepts the full name or the three-letter abbreviation
func ParseAbility(s string) (Ability, error) { return abilities.parse(s) }

// ParseSkill looks up a skill by its full name
func ParseSkill(s string) (Skill, error) { return skills.parse(s) }

// ParseCondition looks up a status condition
func ParseCondition(s string) (Condition, error) { return conditions.parse(s) }

// ParseDamageType looks up a damage type
func ParseDamageType(s string) (DamageType, error) { return damageTypes.parse(s) }

// IsDamageType reports whether s names a damage type
func IsDamageType(s string) bool { return damageTypes.has(s) }

// ParseActionType looks up an action type; "bonus" and "bonus action" are the same
func ParseActionType(s string) (ActionType, error) { return actionTypes.parse(s) }

// IsActionType reports whether s names an action type
func IsActionType(s string) bool { return actionTypes.has(s) }

// ParseTimeUnit accepts singular and plural unit names
func ParseTimeUnit(s string) (TimeUnit, error) { return timeUnits.parse(s) }

// ParseRangeUnit looks up a distance unit
func ParseRangeUnit(s string) (RangeUnit, error) { return rangeUnits.parse(s) }

// ParseTargetShape looks up an area shape
func ParseTargetShape(s string) (TargetShape, error) { return targetShapes.parse(s) }

// ParseCurrency accepts the coin abbreviation or the metal name
func ParseCurrency(s string) (Currency, error) { return currencies.parse(s) }

// IsCurrency reports whether s names a currency
func IsCurrency(s string) bool { return currencies.has(s) }

// ParseClass looks up a spellcasting class
func ParseClass(s string) (Class, error) { return classes.parse(s) }

// IsClass reports whether s names a class
func IsClass(s string) bool { return classes.has(s) }

// ParseSchool looks up a school of magic
func ParseSchool(s string) (School, error) { return schools.parse(s) }

// IsSchool reports whether s names a school of magic
func IsSchool(s string) bool { return schools.has(s) }

// ParseEntryCategory looks up a stat block section heading
func ParseEntryCategory(s string) (EntryCategory, error) { return entryCategories.parse(s) }

// AllDamageTypes returns every damage type in canonical order
func AllDamageTypes() []DamageType { return damageTypes.all() }

// AllAbilities returns the six abilities in stat block order
func AllAbilities() []Ability { return abilities.all() }
