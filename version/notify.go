package version

import (
	"fmt"

	"github.com/odyssey-club/aiosource/color"
	"github.com/odyssey-club/aiosource/constant"
	"github.com/odyssey-club/aiosource/icon"
	"github.com/odyssey-club/aiosource/key"
	"github.com/odyssey-club/aiosource/style"
	"github.com/odyssey-club/aiosource/util"
	"github.com/spf13/viper"
)

// Notify prints a notice when a newer release exists. Lookup failures are silent.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest()
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(version, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/odyssey-club/aiosource/releases/tag/v"+version),
	)

}
