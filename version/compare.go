package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// Compare orders two semantic versions: 1 if a > b, -1 if a < b, 0 if equal.
// A leading "v" and any suffix after the patch number are ignored.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range []lo.Tuple2[int, int]{
		{A: av.major, B: bv.major},
		{A: av.minor, B: bv.minor},
		{A: av.patch, B: bv.patch},
	} {
		if pair.A > pair.B {
			return 1, nil
		}

		if pair.A < pair.B {
			return -1, nil
		}
	}

	return 0, nil
}

type semver struct {
	major, minor, patch int
}

func parse(s string) (semver, error) {
	var v semver
	_, err := fmt.Sscanf(strings.TrimPrefix(s, "v"), "%d.%d.%d", &v.major, &v.minor, &v.patch)
	if err != nil {
		return v, fmt.Errorf("parse version %q: %w", s, err)
	}
	return v, nil
}

var mpvVersion = regexp.MustCompile(`mpv v?(\d+\.\d+\.\d+)`)

// FromMPV extracts the version from the first line printed by `mpv --version`.
func FromMPV(output string) (string, bool) {
	match := mpvVersion.FindStringSubmatch(output)
	if match == nil {
		return "", false
	}
	return match[1], true
}
