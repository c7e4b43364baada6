package creature

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
	"github.com/KirkDiggler/dnd-document-parser/internal/parsers/segment"
)

var (
	entryPattern    = regexp.MustCompile(`^\*\*\*(.+?)\*\*\*\s*(.*)$`)
	subEntryPattern = regexp.MustCompile(`^\*\*([^*].*?)\*\*\s*(.*)$`)
	usagePattern    = regexp.MustCompile(`^(.*?)\s*\(([^()]+)\)$`)
	perDayPattern   = regexp.MustCompile(`(?i)^(\d+)/day( each)?$`)
	rechargePattern = regexp.MustCompile(`(?i)^recharge (\d)(?:\s*[-–]\s*(\d))?$`)
	restPattern     = regexp.MustCompile(`(?i)^recharges after a (.+)$`)
	costPattern     = regexp.MustCompile(`(?i)^costs (\d+) actions?$`)
	perRoundPattern = regexp.MustCompile(`(?i)can take (\d+) legendary actions`)
)

const entryNameTrimset = ".: "

type entries struct {
	buckets          map[dnd5e.EntryCategory][]entities.Entry
	legendaryPerTurn *int
}

// parseEntries reads trait and action entries from every group after the
// fourth. Headings switch the bucket; legendary and mythic sections skip
// one introductory paragraph before their first entry.
func parseEntries(groups []segment.Group) (*entries, error) {
	out := &entries{buckets: make(map[dnd5e.EntryCategory][]entities.Entry)}

	var (
		bucket      = dnd5e.EntryTraits
		current     *entities.Entry
		skipIntro   bool
		flushBucket = func() {
			if current != nil {
				out.buckets[bucket] = append(out.buckets[bucket], *current)
				current = nil
			}
		}
	)

	for _, group := range groups {
		for _, line := range group {
			if title, ok := segment.Heading(line); ok {
				category, err := dnd5e.ParseEntryCategory(title)
				if err != nil {
					return nil, err
				}
				flushBucket()
				bucket = category
				skipIntro = listsWithDoubleMarker(category)
				continue
			}

			if m := entryPattern.FindStringSubmatch(line); m != nil {
				flushBucket()
				entry, err := newEntry(m[1], m[2])
				if err != nil {
					return nil, err
				}
				current = entry
				skipIntro = false
				continue
			}

			if m := subEntryPattern.FindStringSubmatch(segment.StripListMarker(line)); m != nil {
				entry, err := newEntry(m[1], m[2])
				if err != nil {
					return nil, err
				}
				if current == nil || listsWithDoubleMarker(bucket) {
					flushBucket()
					current = entry
				} else {
					current.SubEntries = append(current.SubEntries, *entry)
				}
				skipIntro = false
				continue
			}

			if skipIntro {
				if bucket == dnd5e.EntryLegendaryActions {
					if m := perRoundPattern.FindStringSubmatch(line); m != nil {
						n, _ := strconv.Atoi(m[1])
						out.legendaryPerTurn = &n
					}
				}
				skipIntro = false
				continue
			}

			if current == nil {
				return nil, errors.Parsef(errors.StepCreatureEntries, line, "text outside of an entry")
			}
			appendBody(current, line)
		}
	}
	flushBucket()

	return out, nil
}

// listsWithDoubleMarker reports whether a section writes its top-level
// entries as "**Name.**" instead of "***Name.***"
func listsWithDoubleMarker(bucket dnd5e.EntryCategory) bool {
	return bucket == dnd5e.EntryLegendaryActions || bucket == dnd5e.EntryMythicActions
}

// appendBody extends the last sub-entry if there is one, else the entry
func appendBody(entry *entities.Entry, line string) {
	target := entry
	if n := len(entry.SubEntries); n > 0 {
		target = &entry.SubEntries[n-1]
	}
	if target.Body == "" {
		target.Body = line
		return
	}
	target.Body += "\n" + line
}

func newEntry(rawName, body string) (*entities.Entry, error) {
	name := strings.Trim(rawName, entryNameTrimset)
	if name == "" {
		return nil, errors.Parsef(errors.StepCreatureEntries, rawName, "empty entry name")
	}

	entry := &entities.Entry{Name: name, Body: strings.TrimSpace(body)}
	if m := usagePattern.FindStringSubmatch(name); m != nil {
		usage, err := ParseUsage(m[2])
		if err != nil {
			return nil, err
		}
		if usage != nil {
			entry.Name = m[1]
			entry.Usage = usage
		}
	}
	return entry, nil
}

// ParseUsage parses the text inside an entry name's trailing parentheses.
// It returns nil for parentheticals that are not usage limits, such as
// "Spellcasting (Psionics)".
func ParseUsage(s string) (*entities.Usage, error) {
	s = strings.TrimSpace(s)

	if m := perDayPattern.FindStringSubmatch(s); m != nil {
		charges, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, errors.Parse(errors.StepCreatureEntryUsage, s).WithCause(err)
		}
		return &entities.Usage{Kind: entities.UsagePerDay, Charges: charges, Each: m[2] != ""}, nil
	}

	if m := rechargePattern.FindStringSubmatch(s); m != nil {
		on, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, errors.Parse(errors.StepCreatureEntryUsage, s).WithCause(err)
		}
		if m[2] != "" {
			if top, _ := strconv.Atoi(m[2]); top != 6 || on > top {
				return nil, errors.Parsef(errors.StepCreatureEntryUsage, s, "recharge range must end at 6")
			}
		}
		return &entities.Usage{Kind: entities.UsageRecharge, RechargeOn: on}, nil
	}

	if m := restPattern.FindStringSubmatch(s); m != nil {
		return &entities.Usage{Kind: entities.UsageRest, Rest: strings.ToLower(m[1])}, nil
	}

	if m := costPattern.FindStringSubmatch(s); m != nil {
		cost, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, errors.Parse(errors.StepCreatureEntryUsage, s).WithCause(err)
		}
		return &entities.Usage{Kind: entities.UsageCost, Charges: cost}, nil
	}

	return nil, nil
}
