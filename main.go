// Command aiosource browses the Adventures in Odyssey Club from the terminal.
package main

import (
	"github.com/odyssey-club/aiosource/cmd"
	"github.com/odyssey-club/aiosource/config"
	"github.com/odyssey-club/aiosource/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
