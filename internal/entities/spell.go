package entities

import "github.com/KirkDiggler/dnd-document-parser/internal/entities/dnd5e"

// Spell is a parsed spell write-up
type Spell struct {
	Source         Source             `json:"source" yaml:"source"`
	Name           string             `json:"name" yaml:"name"`
	Level          int                `json:"level" yaml:"level"` // 0 is a cantrip
	School         dnd5e.School       `json:"school" yaml:"school"`
	CastingTime    CastingTime        `json:"casting_time" yaml:"casting_time"`
	Ritual         bool               `json:"ritual" yaml:"ritual"`
	Duration       Duration           `json:"duration" yaml:"duration"`
	Range          Range              `json:"range" yaml:"range"`
	Components     Components         `json:"components" yaml:"components"`
	DamageTypes    []dnd5e.DamageType `json:"damage_types,omitempty" yaml:"damage_types,omitempty"`
	Description    []DescriptionEntry `json:"description" yaml:"description"`
	AtHigherLevels *string            `json:"at_higher_levels,omitempty" yaml:"at_higher_levels,omitempty"`
	Classes        []dnd5e.Class      `json:"classes" yaml:"classes"`
}

// CastingTime is an amount of either an action type or a time unit. Exactly
// one of Action and Time is set. Reactions carry their trigger in Condition.
type CastingTime struct {
	Amount    int              `json:"amount" yaml:"amount"`
	Action    dnd5e.ActionType `json:"action,omitempty" yaml:"action,omitempty"`
	Time      dnd5e.TimeUnit   `json:"time,omitempty" yaml:"time,omitempty"`
	Condition string           `json:"condition,omitempty" yaml:"condition,omitempty"`
}

// DurationKind discriminates Duration
type DurationKind string

// Duration kinds
const (
	DurationInstantaneous DurationKind = "instantaneous"
	DurationTimed         DurationKind = "timed"
)

// Duration is instantaneous or a timed span that may need concentration
type Duration struct {
	Kind          DurationKind   `json:"kind" yaml:"kind"`
	Amount        int            `json:"amount,omitempty" yaml:"amount,omitempty"`
	Unit          dnd5e.TimeUnit `json:"unit,omitempty" yaml:"unit,omitempty"`
	Concentration bool           `json:"concentration,omitempty" yaml:"concentration,omitempty"`
}

// RangeKind discriminates Range
type RangeKind string

// Range kinds
const (
	RangeSelf    RangeKind = "self"
	RangeTouch   RangeKind = "touch"
	RangeSpecial RangeKind = "special"
	RangeRanged  RangeKind = "ranged"
)

// Range is self, touch, special, or a distance with a target shape.
// Self ranges with an area ("Self (15-foot cone)") are ranged with the area
// shape and SelfOrigin set.
type Range struct {
	Kind       RangeKind         `json:"kind" yaml:"kind"`
	Amount     int               `json:"amount,omitempty" yaml:"amount,omitempty"`
	Unit       dnd5e.RangeUnit   `json:"unit,omitempty" yaml:"unit,omitempty"`
	Shape      dnd5e.TargetShape `json:"shape,omitempty" yaml:"shape,omitempty"`
	SelfOrigin bool              `json:"self_origin,omitempty" yaml:"self_origin,omitempty"`
}

// Components lists what casting requires
type Components struct {
	Verbal   bool      `json:"verbal" yaml:"verbal"`
	Somatic  bool      `json:"somatic" yaml:"somatic"`
	Material *Material `json:"material,omitempty" yaml:"material,omitempty"`
}

// Material is a material component
type Material struct {
	Description string `json:"description" yaml:"description"`
	Cost        *Cost  `json:"cost,omitempty" yaml:"cost,omitempty"`
	Consumed    bool   `json:"consumed" yaml:"consumed"`
}

// Cost is an amount of coin
type Cost struct {
	Amount   int            `json:"amount" yaml:"amount"`
	Currency dnd5e.Currency `json:"currency" yaml:"currency"`
}

// DescriptionEntry is a paragraph or a bulleted list. Exactly one of Text
// and List is set.
type DescriptionEntry struct {
	Text string     `json:"text,omitempty" yaml:"text,omitempty"`
	List []ListItem `json:"list,omitempty" yaml:"list,omitempty"`
}

// IsList reports whether the entry is a bulleted list
func (d DescriptionEntry) IsList() bool {
	return d.List != nil
}

// ListItem is one bullet, with any bullets indented beneath it
type ListItem struct {
	Text  string     `json:"text" yaml:"text"`
	Items []ListItem `json:"items,omitempty" yaml:"items,omitempty"`
}
