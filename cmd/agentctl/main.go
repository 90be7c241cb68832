package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/cli/commands"
	"github.com/DatcuMarianRO/AiAgentsRomania-sub000/internal/cli/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		// Handle unknown command errors specially
		errMsg := err.Error()
		if strings.Contains(errMsg, "unknown command") {
			ui.PrintError("%s", errMsg)
			fmt.Println("\nRun 'agentctl --help' for usage.")
		}
		os.Exit(1)
	}
}
