package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode controls whether check renders the interactive progress view.
type uiMode uint8

const (
	uiAuto uiMode = iota
	uiOn
	uiOff
)

func readUIMode(value string) (uiMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return uiAuto, nil
	case "on":
		return uiOn, nil
	case "off":
		return uiOff, nil
	}
	return uiAuto, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// shouldUseTUI resolves auto against the output terminal.
func shouldUseTUI(mode uiMode) bool {
	switch mode {
	case uiOn:
		return true
	case uiOff:
		return false
	}
	return isTerminal(os.Stdout)
}
