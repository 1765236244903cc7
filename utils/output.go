package utils

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Status lines go to stderr; stdout is reserved for rendered output.
var (
	Out     io.Writer = color.Error
	Verbose bool
)

var (
	green  = color.New(color.FgGreen, color.Bold)
	yellow = color.New(color.FgYellow, color.Bold)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// Info prints only in verbose mode.
func Info(format string, args ...any) {
	if !Verbose {
		return
	}
	cyan.Fprintf(Out, "ℹ️  %s\n", fmt.Sprintf(format, args...))
}

// Success prints a green completion line.
func Success(format string, args ...any) {
	green.Fprintf(Out, "✅ %s\n", fmt.Sprintf(format, args...))
}

// Warn prints a yellow warning line.
func Warn(format string, args ...any) {
	yellow.Fprintf(Out, "⚠️  %s\n", fmt.Sprintf(format, args...))
}

// Fail prints a red error line.
func Fail(format string, args ...any) {
	red.Fprintf(Out, "❌ %s\n", fmt.Sprintf(format, args...))
}
