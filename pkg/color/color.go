// Package color styles REPL messages for the terminal.
package color

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

var (
	colorEnabled = true
	profile      = termenv.ANSI
)

func init() {
	if os.Getenv("NO_COLOR") != "" {
		colorEnabled = false
	}
	profile = termenv.NewOutput(os.Stdout).EnvColorProfile()
	if profile == termenv.Ascii {
		colorEnabled = false
	}
}

// EnableColor switches styling on or off
func EnableColor(enable bool) {
	colorEnabled = enable
	if enable && profile == termenv.Ascii {
		profile = termenv.ANSI
	}
}

// DetectFor enables styling only when w is a color capable terminal
func DetectFor(w io.Writer) {
	out := termenv.NewOutput(w)
	profile = out.EnvColorProfile()
	colorEnabled = colorEnabled && profile != termenv.Ascii
}

func Colorize(color termenv.ANSIColor, text string) string {
	if !colorEnabled {
		return text
	}
	return termenv.String(text).Foreground(profile.Convert(color)).String()
}

func BrightRedText(text string) string {
	return Colorize(termenv.ANSIBrightRed, text)
}

func Error(message string) string {
	if !colorEnabled {
		return message
	}
	return BrightRedText(message)
}
