// Package history persists resume positions for played media, keyed by URL.
package history

import (
	"time"

	"github.com/jeremyfitness/fitplayer/filesystem"
	"github.com/jeremyfitness/fitplayer/where"
	"github.com/metafates/gache"
)

// Finished is the fraction past which media counts as watched and its entry is dropped.
const Finished = 0.95

var cacher = gache.New[map[string]*Entry](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// now is replaced in tests.
var now = time.Now

// Get returns every saved entry keyed by URL.
func Get() (map[string]*Entry, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}
	return cached, nil
}

// Lookup returns the entry saved for url, if any.
func Lookup(url string) (*Entry, bool, error) {
	saved, err := Get()
	if err != nil {
		return nil, false, err
	}

	entry, ok := saved[url]
	return entry, ok, nil
}

// Save records the position reached in url. Positions at the very start are
// not worth resuming and finished media is forgotten.
func Save(url, title string, played, duration float64) error {
	if url == "" || duration <= 0 {
		return nil
	}

	saved, err := Get()
	if err != nil {
		return err
	}

	switch {
	case played >= Finished:
		delete(saved, url)
	case played*duration < 1:
		return nil
	default:
		saved[url] = &Entry{
			URL:       url,
			Title:     title,
			Played:    played,
			Duration:  duration,
			UpdatedAt: now(),
		}
	}

	return cacher.Set(saved)
}

// Remove deletes the entry for url.
func Remove(url string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, url)
	return cacher.Set(saved)
}
