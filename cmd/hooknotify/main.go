// hooknotify - push notifications for agent session lifecycle hooks

package main

import (
	"os"

	"github.com/ariel-frischer/hooknotify/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
