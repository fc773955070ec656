package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeremyfitness/fitplayer/color"
	"github.com/jeremyfitness/fitplayer/constant"
	"github.com/jeremyfitness/fitplayer/icon"
	"github.com/jeremyfitness/fitplayer/key"
	"github.com/jeremyfitness/fitplayer/style"
	"github.com/jeremyfitness/fitplayer/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// MinMPVVersion is the oldest mpv whose JSON IPC reports every property the player observes.
const MinMPVVersion = "0.33.0"

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkCmd reports whether the media player is installed and recent enough.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that mpv is installed and supported",
	Run: func(cmd *cobra.Command, args []string) {
		binary := viper.GetString(key.PlayerBinary)

		path, err := exec.LookPath(binary)
		if err != nil {
			printMissingDependencyError(binary)
			os.Exit(1)
		}

		fmt.Printf("%s %s found at %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), binary, path)

		v, ok, err := playerVersion(path)
		handleErr(err)

		if !ok {
			fmt.Printf("%s could not read the version of %s\n", style.Fg(color.Yellow)(icon.Get(icon.Fail)), binary)
			return
		}

		comp, err := version.Compare(v, MinMPVVersion)
		handleErr(err)

		if comp < 0 {
			handleErr(fmt.Errorf("mpv %s is too old, %s needs at least %s", v, constant.App, MinMPVVersion))
		}

		fmt.Printf("%s mpv %s is supported\n", style.Fg(color.Green)(icon.Get(icon.Success)), strings.TrimSpace(v))
	},
}

// playerVersion asks the mpv binary at path for its release number.
func playerVersion(path string) (v string, ok bool, err error) {
	out, err := exec.Command(path, "--version").Output()
	if err != nil {
		return "", false, fmt.Errorf("%s --version: %w", path, err)
	}

	v, ok = version.FromMPV(string(out))
	return v, ok, nil
}

// CheckDependencies exits with installation advice when the configured player binary is missing.
func CheckDependencies() {
	binary := viper.GetString(key.PlayerBinary)
	if _, err := exec.LookPath(binary); err != nil {
		printMissingDependencyError(binary)
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case constant.Darwin:
		installCmd = "brew install mpv"
	case constant.Linux:
		installCmd = "sudo apt install mpv"
	case constant.Windows:
		installCmd = "scoop install mpv"
	case constant.Android:
		installCmd = "pkg install mpv"
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The media player '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
