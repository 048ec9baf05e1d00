package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"yashubustudio/sieve/sieve"
)

type reporter struct {
	out      io.Writer
	width    int
	title    *color.Color
	badge    *color.Color
	category *color.Color
	muted    *color.Color
}

func newReporter(out io.Writer, mode string, width int) (*reporter, error) {
	useColor, err := colorEnabled(out, mode)
	if err != nil {
		return nil, err
	}
	if width <= 0 {
		width = terminalWidth(out)
	}
	r := &reporter{
		out:      out,
		width:    width,
		title:    color.New(color.Bold),
		badge:    color.New(color.FgYellow),
		category: color.New(color.FgCyan),
		muted:    color.New(color.Faint),
	}
	for _, c := range []*color.Color{r.title, r.badge, r.category, r.muted} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r, nil
}

func colorEnabled(out io.Writer, mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --color value %q (want auto|on|off)", mode)
	}
}

func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// labelWidth is the display width of the widest category name.
func labelWidth() int {
	w := 0
	for _, c := range sieve.Categories() {
		if cw := runewidth.StringWidth(string(c)); cw > w {
			w = cw
		}
	}
	return w
}

func (r *reporter) printViews(views []sieve.View) {
	if len(views) == 0 {
		fmt.Fprintln(r.out, r.muted.Sprint("Nothing selected."))
		return
	}
	pad := labelWidth()
	for i, v := range views {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		fmt.Fprintf(r.out, "%s  %s\n", r.title.Sprint(v.Title), r.badge.Sprint("* "+sieve.Badge))
		for _, g := range v.Groups {
			name := runewidth.FillRight(string(g.Category), pad)
			items := "-"
			if len(g.Diagnoses) > 0 {
				items = strings.Join(g.Diagnoses, "; ")
			}
			if r.width > 0 {
				room := r.width - pad - 4
				if room < 8 {
					room = 8
				}
				items = runewidth.Truncate(items, room, "…")
			}
			fmt.Fprintf(r.out, "  %s  %s\n", r.category.Sprint(name), items)
		}
	}
}
