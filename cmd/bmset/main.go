package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/peterh/liner"

	"bmset"
	"bmset/internal/shell"
)

func main() {
	size := flag.Int("size", bmset.DefaultSize, "default set size in bytes (1-32)")
	timing := flag.Bool("timing", false, "print how long each command took")
	flag.Parse()

	sh, err := shell.New(shell.WithDefaultSize(*size), shell.WithTiming(*timing))
	if err != nil {
		fmt.Fprintf(os.Stderr, "bmset: %v\n", err)
		os.Exit(1)
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(completer)

	histPath, err := historyPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: no history: %v\n", err)
	} else if err := loadHistory(line, histPath); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	fmt.Println("bmset - bitmap set shell")
	fmt.Printf("config: default_size=%d capacity=%d\n", *size, *size*8)
	fmt.Println("type help for commands")

	for {
		input, err := line.Prompt("> ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "input error: %v\n", err)
			break
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}

		quit, err := sh.Exec(input)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		if quit {
			break
		}
	}

	if histPath != "" {
		if err := saveHistory(line, histPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
}

func completer(input string) []string {
	var out []string
	for _, name := range shell.Commands() {
		if strings.HasPrefix(name, strings.ToLower(input)) {
			out = append(out, name)
		}
	}
	return out
}
