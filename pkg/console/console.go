// Package console prints the user-facing status lines of the tool.
// Color assignments are fixed: cyan for progress, green for success,
// yellow for hints and warnings, red for errors.
package console

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	info    = color.New(color.FgCyan)
	success = color.New(color.FgGreen)
	warn    = color.New(color.FgHiYellow)
	fail    = color.New(color.FgRed)
)

// Infof prints a cyan progress line.
func Infof(format string, args ...interface{}) {
	info.Println(fmt.Sprintf(format, args...))
}

// Successf prints a green success line.
func Successf(format string, args ...interface{}) {
	success.Println(fmt.Sprintf(format, args...))
}

// Warnf prints a yellow warning or hint line.
func Warnf(format string, args ...interface{}) {
	warn.Println(fmt.Sprintf(format, args...))
}

// Errorf prints a red error line.
func Errorf(format string, args ...interface{}) {
	fail.Println(fmt.Sprintf(format, args...))
}
