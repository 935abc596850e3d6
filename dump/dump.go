/*
Package dump writes the content of collections to a console, for debugging
purposes.

Items are listed one per line, prefixed by their position in iteration order.
Entries of hash tables are listed as key/value pairs. On terminals, positions
and keys are colored.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package dump

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/clxns"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/term"
)

// tracer writes to trace with key 'clxns'
func tracer() tracing.Trace {
	return tracing.Select("clxns")
}

// Config controls the output of Fprint.
type Config struct {
	LineWidth int  // lines are cut off after LineWidth runes; 0 means no limit
	Colored   bool // use terminal colors
	MaxItems  int  // stop after MaxItems items; 0 means no limit
}

// Palette holds the colors used by Fprint.
type Palette struct {
	Index *color.Color
	Key   *color.Color
	Value *color.Color
}

// DefaultPalette is the palette Fprint uses for colored output.
var DefaultPalette = Palette{
	Index: color.New(color.FgBlue),
	Key:   color.New(color.FgRed, color.Bold),
	Value: color.New(color.Reset),
}

// ConfigFromTerminal is a simple helper for creating a dump Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's width
// and switches on colors.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 80}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colored = true
		if w, _, err := term.GetSize(fd); err == nil && w > 10 {
			config.LineWidth = w
		}
	}
	tracer().Debugf("dump: line width %d, colored=%v", config.LineWidth, config.Colored)
	return config
}

// Fprint writes the items of a collection to w, one per line, followed by a
// summary line with the item count. A nil config prints without colors and
// without limits.
func Fprint(w io.Writer, c clxns.Collection, config *Config) error {
	if config == nil {
		config = &Config{}
	}
	pal := palette(config.Colored)
	i := 0
	for item := range clxns.All(c) {
		if config.MaxItems > 0 && i >= config.MaxItems {
			if _, err := fmt.Fprintln(w, "…"); err != nil {
				return err
			}
			break
		}
		var line string
		if kv, ok := item.(clxns.KVP); ok {
			line = pal.Index.Sprintf("%4d ", i) + pal.Key.Sprint(kv.Key) + " = " +
				pal.Value.Sprint(clip(fmt.Sprint(kv.Value), config.LineWidth-len(kv.Key)-8))
		} else {
			line = pal.Index.Sprintf("%4d ", i) + pal.Value.Sprint(clip(fmt.Sprint(item), config.LineWidth-5))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			tracer().Errorf("dump: %s", err.Error())
			return err
		}
		i++
	}
	_, err := fmt.Fprintf(w, "(%T, %d items)\n", c, clxns.Count(c))
	return err
}

func palette(colored bool) Palette {
	if colored {
		return DefaultPalette
	}
	pal := Palette{
		Index: color.New(color.Reset),
		Key:   color.New(color.Reset),
		Value: color.New(color.Reset),
	}
	pal.Index.DisableColor()
	pal.Key.DisableColor()
	pal.Value.DisableColor()
	return pal
}

// clip cuts s to at most width runes. A width ≤ 0 leaves s unchanged.
func clip(s string, width int) string {
	if width <= 0 {
		return s
	}
	if r := []rune(s); len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s
}
