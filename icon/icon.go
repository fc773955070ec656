// Package icon renders control-surface symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/jeremyfitness/fitplayer/key"
	"github.com/spf13/viper"
)

const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants returns every supported icon variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

// Icon identifies a symbol.
type Icon int

const (
	Play Icon = iota
	Pause
	SkipBack
	SkipForward
	VolumeHigh
	VolumeLow
	Muted
	Settings
	Fullscreen
	PiP
	Theater
	Loading
	Fail
	Success
	Progress
)

type iconDef struct {
	emoji string
	nerd  string
	plain string
}

func (d iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return ""
	}
}

var icons = map[Icon]iconDef{
	Play:        {emoji: "▶️", nerd: "\uf04b", plain: ">"},
	Pause:       {emoji: "⏸️", nerd: "\uf04c", plain: "||"},
	SkipBack:    {emoji: "⏪", nerd: "\uf04a", plain: "<<"},
	SkipForward: {emoji: "⏩", nerd: "\uf04e", plain: ">>"},
	VolumeHigh:  {emoji: "🔊", nerd: "\uf028", plain: "vol"},
	VolumeLow:   {emoji: "🔉", nerd: "\uf027", plain: "vol"},
	Muted:       {emoji: "🔇", nerd: "\uf026", plain: "mute"},
	Settings:    {emoji: "⚙️", nerd: "\uf013", plain: "set"},
	Fullscreen:  {emoji: "⛶", nerd: "\uf065", plain: "[ ]"},
	PiP:         {emoji: "🗗", nerd: "\uf2d2", plain: "pip"},
	Theater:     {emoji: "🎭", nerd: "\uf26c", plain: "thr"},
	Loading:     {emoji: "⏳", nerd: "\uf110", plain: "..."},
	Fail:        {emoji: "💀", nerd: "\uf00d", plain: "X"},
	Success:     {emoji: "✅", nerd: "\uf00c", plain: "+"},
	Progress:    {emoji: "👾", nerd: "\uf252", plain: "~"},
}

// Get returns the rendered symbol, or "" for an unknown variant.
func Get(i Icon) string {
	return icons[i].get()
}
