package history

import (
	"fmt"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jeremyfitness/fitplayer/timefmt"
)

// Entry is a single saved resume position.
type Entry struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Played    float64   `json:"played"`
	Duration  float64   `json:"duration"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Position is the saved position in seconds.
func (e *Entry) Position() float64 {
	return e.Played * e.Duration
}

func (e *Entry) String() string {
	name := e.Title
	if name == "" {
		name = e.URL
	}

	format := timefmt.FormatShort
	if e.Duration >= 3600 {
		format = timefmt.FormatLong
	}

	return fmt.Sprintf(
		"%s : %s / %s, %s",
		name,
		format(e.Position()),
		format(e.Duration),
		humanize.Time(e.UpdatedAt),
	)
}

// Sorted returns the entries most recent first.
func Sorted(entries map[string]*Entry) []*Entry {
	list := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		list = append(list, e)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].UpdatedAt.After(list[j].UpdatedAt)
	})

	return list
}
