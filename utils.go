package main

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/eiannone/keyboard"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

func ValidTempo(input int) bool {
	return input > MIN_TEMPO && input < MAX_TEMPO
}

func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	if runtime.GOOS == "windows" {
		home := os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
		if home == "" {
			home = os.Getenv("USERPROFILE")
		}
		return home
	}
	return os.Getenv("HOME")
}

// ConfigPath resolves the preset file: flag value, then environment, then home.
func ConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envConfigPath); v != "" {
		return v
	}
	return filepath.Join(UserHomeDir(), configFileName)
}

// isTerminal reports whether f is a file attached to a terminal.
func isTerminal(f interface{}) bool {
	file, ok := f.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// waitForKey blocks until a single key is pressed.
func waitForKey(w io.Writer) error {
	if _, err := io.WriteString(w, pressAnyKeyMessage+"\n"); err != nil {
		return err
	}
	if _, _, err := keyboard.GetSingleKey(); err != nil {
		return errors.Wrap(err, "reading key")
	}
	return nil
}
