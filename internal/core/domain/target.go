package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Target is one targeting rule row owned by a campaign. Every field is
// optional: an empty field matches any viewer on that dimension. A campaign
// may declare several targets; they combine with OR semantics while the
// non-empty fields of a single target combine with AND semantics.
type Target struct {
	ID         int64
	CampaignID uuid.UUID
	Country    string
	Region     string
	City       string
	Sport      string
	Audience   string
	Device     string
}

// Matches reports whether every non-empty field of the target equals the
// corresponding viewer attribute. Comparison is case-insensitive and
// whitespace-trimmed on the target side; viewer attributes are already
// normalized by the resolver.
func (t *Target) Matches(v ViewerContext) bool {
	return fieldMatches(t.Country, v.Country) &&
		fieldMatches(t.Region, v.Region) &&
		fieldMatches(t.City, v.City) &&
		fieldMatches(t.Sport, v.Sport) &&
		fieldMatches(t.Audience, v.Audience) &&
		fieldMatches(t.Device, v.Device)
}

// TargetsMatch applies the campaign-level rule: a campaign with zero targets
// matches every viewer, a campaign with one or more targets matches when at
// least one of them does.
func TargetsMatch(targets []Target, v ViewerContext) bool {
	if len(targets) == 0 {
		return true
	}
	for i := range targets {
		if targets[i].Matches(v) {
			return true
		}
	}
	return false
}

func fieldMatches(want, got string) bool {
	want = strings.ToLower(strings.TrimSpace(want))
	return want == "" || want == got
}
