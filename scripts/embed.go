// Package scripts embeds the Risor policy scripts shipped with regraft.
package scripts

import (
	"embed"
	"fmt"
)

//go:embed gate/*.risor
var FS embed.FS

// DefaultGate is the path of the built-in patch-legality policy within FS.
const DefaultGate = "gate/default.risor"

// Default returns the built-in policy source.
func Default() string {
	src, err := FS.ReadFile(DefaultGate)
	if err != nil {
		// The file is embedded at build time; a failed read is a broken build.
		panic(fmt.Sprintf("scripts: embedded policy missing: %v", err))
	}
	return string(src)
}
