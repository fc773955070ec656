package cmd

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
	"text/template"

	"github.com/jeremyfitness/fitplayer/color"
	"github.com/jeremyfitness/fitplayer/constant"
	"github.com/jeremyfitness/fitplayer/key"
	"github.com/jeremyfitness/fitplayer/style"
	"github.com/jeremyfitness/fitplayer/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version number")
}

var versionTemplate = template.Must(template.New("version").Funcs(template.FuncMap{
	"faint":   style.Faint,
	"bold":    style.Bold,
	"magenta": style.Fg(color.Purple),
	"red":     style.Fg(color.Red),
}).Parse(`{{ magenta "▇▇▇" }} {{ magenta .App }}

  {{ faint "Version" }}     {{ bold .Version }}
  {{ faint "Git Commit" }}  {{ bold .Revision }}
  {{ faint "Build Date" }}  {{ bold .BuiltAt }}
  {{ faint "Built By" }}    {{ bold .BuiltBy }}
  {{ faint "Platform" }}    {{ bold .OS }}/{{ bold .Arch }}
  {{ faint "Player" }}      {{ if .Player }}{{ bold .Player }}{{ else }}{{ red "not found" }}{{ end }}
`))

type versionInfo struct {
	App      string
	Version  string
	Revision string
	BuiltAt  string
	BuiltBy  string
	OS       string
	Arch     string
	Player   string
}

// installedPlayer describes the configured binary, or returns "" when it is missing.
func installedPlayer() string {
	binary := viper.GetString(key.PlayerBinary)

	path, err := exec.LookPath(binary)
	if err != nil {
		return ""
	}

	if v, ok, err := playerVersion(path); err == nil && ok {
		return binary + " " + v
	}
	return binary
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify()

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), versionInfo{
			App:      constant.App,
			Version:  constant.Version,
			Revision: constant.Revision,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			Player:   installedPlayer(),
		}))
	},
}
