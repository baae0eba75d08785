package assets

import (
	"embed"
	"strings"
)

//go:embed tips.txt
var tipsFS embed.FS

// DefaultTips returns the built-in eco-tip catalog, one tip per line.
// Blank lines and lines starting with '#' are skipped.
func DefaultTips() []string {
	raw, err := tipsFS.ReadFile("tips.txt")
	if err != nil {
		// The file is embedded at compile time; failure here is a build bug.
		panic("assets: tips.txt missing from embed: " + err.Error())
	}
	var tips []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tips = append(tips, line)
	}
	return tips
}
