// cmd/planner-cli/main.go
package main

import (
	"os"

	"trip-planner/cmd/planner-cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
