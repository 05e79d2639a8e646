package main

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/peterh/liner"
)

const historyFile = ".bmset_history"

func historyPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, historyFile), nil
}

// loadHistory fills the line editor with previously saved commands.
// A missing history file is not an error.
func loadHistory(line *liner.State, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	_, err = line.ReadHistory(f)
	return errors.Wrapf(err, "reading %s", path)
}

func saveHistory(line *liner.State, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = line.WriteHistory(f)
	return errors.Wrapf(err, "writing %s", path)
}
