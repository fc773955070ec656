package constant

import _ "embed"

// AsciiArtLogo is the application banner shown in the root help text.
//
//go:embed ascii.txt
var AsciiArtLogo string
