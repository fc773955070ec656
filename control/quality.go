package control

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MatchQuality picks the option closest to want: an exact case-insensitive
// match, else the best fuzzy match, else the first option.
func MatchQuality(options []string, want string) string {
	if len(options) == 0 {
		return ""
	}

	want = strings.TrimSpace(want)
	if want == "" {
		return options[0]
	}

	for _, o := range options {
		if strings.EqualFold(o, want) {
			return o
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(want, options)
	if len(ranks) == 0 {
		return options[0]
	}

	sort.Sort(ranks)
	return ranks[0].Target
}
