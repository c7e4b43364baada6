package errors

// Step names the parsing step that produced an error. Tests and batch
// callers match on Step identity; the offending text travels separately in
// Error.Input.
type Step string

// Creature steps
const (
	StepCreatureGroups           Step = "CREATURE_GROUPS"
	StepCreatureIdentity         Step = "CREATURE_IDENTITY"
	StepCreatureName             Step = "CREATURE_NAME"
	StepCreatureSizeType         Step = "CREATURE_SIZE_TYPE"
	StepCreatureType             Step = "CREATURE_TYPE"
	StepCreatureAlignment        Step = "CREATURE_ALIGNMENT"
	StepCreatureCombat           Step = "CREATURE_COMBAT"
	StepCreatureArmorClass       Step = "CREATURE_ARMOR_CLASS"
	StepCreatureHitPoints        Step = "CREATURE_HIT_POINTS"
	StepCreatureSpeed            Step = "CREATURE_SPEED"
	StepCreatureAbilityScores    Step = "CREATURE_ABILITY_SCORES"
	StepCreatureTraits           Step = "CREATURE_TRAITS"
	StepCreatureSavingThrows     Step = "CREATURE_SAVING_THROWS"
	StepCreatureSkills           Step = "CREATURE_SKILLS"
	StepCreatureDamageModifiers  Step = "CREATURE_DAMAGE_MODIFIERS"
	StepCreatureConditionImmune  Step = "CREATURE_CONDITION_IMMUNITIES"
	StepCreatureSenses           Step = "CREATURE_SENSES"
	StepCreatureLanguages        Step = "CREATURE_LANGUAGES"
	StepCreatureChallenge        Step = "CREATURE_CHALLENGE"
	StepCreatureProficiencyBonus Step = "CREATURE_PROFICIENCY_BONUS"
	StepCreatureEntries          Step = "CREATURE_ENTRIES"
	StepCreatureEntryUsage       Step = "CREATURE_ENTRY_USAGE"
)

// Spell steps
const (
	StepSpellGroups      Step = "SPELL_GROUPS"
	StepSpellIdentity    Step = "SPELL_IDENTITY"
	StepSpellName        Step = "SPELL_NAME"
	StepSpellLevelSchool Step = "SPELL_LEVEL_SCHOOL"
	StepSpellMechanics   Step = "SPELL_MECHANICS"
	StepSpellCastingTime Step = "SPELL_CASTING_TIME"
	StepSpellRange       Step = "SPELL_RANGE"
	StepSpellComponents  Step = "SPELL_COMPONENTS"
	StepSpellDuration    Step = "SPELL_DURATION"
	StepSpellClasses     Step = "SPELL_CLASSES"
	StepSpellEntries     Step = "SPELL_ENTRIES"
)

// Lexicon steps, one per closed vocabulary
const (
	StepLexiconSize          Step = "LEXICON_SIZE"
	StepLexiconCreatureType  Step = "LEXICON_CREATURE_TYPE"
	StepLexiconOrder         Step = "LEXICON_ALIGNMENT_ORDER"
	StepLexiconMoral         Step = "LEXICON_ALIGNMENT_MORAL"
	StepLexiconAbility       Step = "LEXICON_ABILITY"
	StepLexiconSkill         Step = "LEXICON_SKILL"
	StepLexiconCondition     Step = "LEXICON_CONDITION"
	StepLexiconDamageType    Step = "LEXICON_DAMAGE_TYPE"
	StepLexiconActionType    Step = "LEXICON_ACTION_TYPE"
	StepLexiconTimeUnit      Step = "LEXICON_TIME_UNIT"
	StepLexiconRangeUnit     Step = "LEXICON_RANGE_UNIT"
	StepLexiconTargetShape   Step = "LEXICON_TARGET_SHAPE"
	StepLexiconCurrency      Step = "LEXICON_CURRENCY"
	StepLexiconClass         Step = "LEXICON_CLASS"
	StepLexiconSchool        Step = "LEXICON_SCHOOL"
	StepLexiconEntryCategory Step = "LEXICON_ENTRY_CATEGORY"
)

// Boundary steps
const (
	StepLoad   Step = "LOAD"
	StepExport Step = "EXPORT"
)

// String returns the string representation of the step
func (s Step) String() string {
	return string(s)
}

// NotExpectedKind reports whether a failure at this step means the document
// is simply not of the kind being parsed. Batch callers skip these silently.
func (s Step) NotExpectedKind() bool {
	switch s {
	case StepCreatureName, StepSpellName:
		return true
	default:
		return false
	}
}
