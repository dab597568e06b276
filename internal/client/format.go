// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// formatter applies semantic coloring to terminal output.
type formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

func (f formatter) Sprint(a ...any) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// noColor reports whether color output should be disabled.
func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	successText = formatter{color: color.New(color.FgGreen)}
	warningText = formatter{color: color.New(color.FgYellow)}
	errorText   = formatter{color: color.New(color.FgRed)}
	mutedText   = formatter{color: color.New(color.FgHiBlack), prefix: "(", suffix: ")"}
)

// FormatError renders err for the terminal.
func FormatError(err error) string {
	return errorText.Sprint("error: ") + err.Error()
}
