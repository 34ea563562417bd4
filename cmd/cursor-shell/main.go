package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/chzyer/readline"
)

// Command completer for readline
var completer = readline.NewPrefixCompleter(
	readline.PcItem(".help"),
	readline.PcItem(".exit"),
	readline.PcItem("LOAD",
		readline.PcItem("RANDOM"),
	),
	readline.PcItem("USE",
		readline.PcItem("RW"),
		readline.PcItem("RO"),
	),
	readline.PcItem("BEGIN"),
	readline.PcItem("END"),
	readline.PcItem("SEEK"),
	readline.PcItem("GET"),
	readline.PcItem("SET"),
	readline.PcItem("IDX"),
	readline.PcItem("DIST"),
	readline.PcItem("SORT",
		readline.PcItem("DESC"),
	),
	readline.PcItem("FIND"),
	readline.PcItem("SHOW"),
	readline.PcItem("SCAN",
		readline.PcItem("EVEN"),
		readline.PcItem("ODD"),
	),
)

const helpText = `
cursor-shell - interactive random-access cursors over an int sequence

Commands:
  .help                   - Show this help message
  .exit                   - Exit the program

  LOAD v1 v2 ...          - Load a sequence and reset both cursors to its start
  LOAD RANDOM n           - Load a random permutation of 0..n-1
  USE RW|RO               - Select the mutable or the read-only cursor

  BEGIN | END             - Move the active cursor to the first or one-past-last position
  SEEK offset             - Move the active cursor to offset
  + [n] | - [n]           - Move the active cursor forward or back (default 1)
  GET                     - Print the element under the active cursor
  IDX n                   - Print the element n positions from the active cursor
  SET value               - Write through the mutable cursor
  DIST                    - Print cursor distances
  SORT [DESC]             - Sort the whole sequence
  FIND value              - Move the read-only cursor to the first match
  SHOW                    - Print the sequence, [x] marks RW and <x> marks RO
  SCAN [lo hi] [EVEN|ODD] - Print values, optionally in [lo, hi) of a sorted sequence
`

var seed = flag.Int64("seed", time.Now().UnixNano(), "Seed for LOAD RANDOM")

func main() {
	flag.Parse()

	fmt.Println("cursor-shell version 1.0.0")
	fmt.Println("Enter .help for usage hints.")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "cursor> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".cursor_shell_history"),
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing readline: %s\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	s := newSession(rl.Stdout(), *seed)
	for {
		rl.SetPrompt(s.prompt())

		line, readErr := rl.Readline()
		if readErr != nil {
			if readErr == readline.ErrInterrupt {
				if len(line) == 0 {
					break
				}
				continue
			} else if readErr == io.EOF {
				fmt.Println("Goodbye!")
				break
			}
			fmt.Fprintf(os.Stderr, "Error reading input: %s\n", readErr)
			continue
		}

		if err := s.Exec(line); err != nil {
			if errors.Is(err, errExit) {
				fmt.Println("Goodbye!")
				return
			}
			fmt.Fprintf(rl.Stderr(), "Error: %s\n", err)
		}
	}
}
