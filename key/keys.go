// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Player - these keys configure the media primitive and the control surface bound to it.
const (
	PlayerBinary              = "player.binary"
	PlayerQualityOptions      = "player.quality_options"
	PlayerDefaultQuality      = "player.default_quality"
	PlayerPlaybackRates       = "player.playback_rates"
	PlayerAutoplay            = "player.autoplay"
	PlayerLoop                = "player.loop"
	PlayerIdleHideMs          = "player.idle_hide_ms"
	PlayerLeaveHideMs         = "player.leave_hide_ms"
	PlayerKeyboardSeekSeconds = "player.keyboard_seek_seconds"
	PlayerButtonSeekSeconds   = "player.button_seek_seconds"
	PlayerVolumeStep          = "player.volume_step"
)

// History Tracking - these keys configure persistence of resume positions.
const (
	HistorySaveProgress = "history.save_progress"
	HistoryResume       = "history.resume"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the control surface's terminal behavior.
const (
	TUIMouse = "tui.mouse"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
