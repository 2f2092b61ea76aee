// Command gridpath loads a maze from an image or JSON file and answers
// shortest-path questions about it, or plays a hide-and-seek round in the
// terminal.
//
//	gridpath search --map maze.png --from 2,2 --to 40,44 --check
//	gridpath components --map maze.json
//	gridpath play --map maze.png --strict-repair
//
// Every flag can also come from a YAML config file (--config), from a .env
// file, or from GRIDPATH_* environment variables.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
