package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/scribe-notes/scribe/internal/note"
)

func newListCmd() *cobra.Command {
	var (
		showPaths bool
		showTags  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withIndex(func(ix *note.Index) error {
				if ix.Len() == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "There are no notes to list!")
					fmt.Fprintln(cmd.OutOrStdout(), "Create one with 'scribe new <name>'")
					fmt.Fprintln(cmd.OutOrStdout(), "Try 'scribe --help' for more options.")
					return nil
				}

				outputTable(cmd, ix.Notes(), showPaths, showTags)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&showPaths, "paths", "p", false, "Show note paths")
	cmd.Flags().BoolVarP(&showTags, "tags", "t", false, "Show note tags")

	return cmd
}

func getTerminalWidth() int {
	// Try to get terminal width from stdout
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	// Default width if terminal size cannot be determined
	return 80
}

// wrapString wraps a string to fit within maxWidth, accounting for multi-byte characters
func wrapString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}

	s = strings.TrimSpace(s)
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	var result strings.Builder
	var currentLine strings.Builder
	currentWidth := 0

	for _, r := range s {
		charWidth := runewidth.RuneWidth(r)

		if currentWidth+charWidth > maxWidth {
			if currentWidth > 0 {
				result.WriteString(currentLine.String())
				result.WriteString("\n")
				currentLine.Reset()
				currentWidth = 0
			}
		}

		currentLine.WriteRune(r)
		currentWidth += charWidth
	}

	if currentLine.Len() > 0 {
		result.WriteString(currentLine.String())
	}

	return result.String()
}

// columnWidths holds the calculated widths for each column
type columnWidths struct {
	name int
	path int
	tags int
}

// calculateColumnWidths determines column widths based on terminal width and data
func calculateColumnWidths(termWidth int, notes []note.Note, showPaths, showTags bool) columnWidths {
	numColumns := 1
	if showPaths {
		numColumns++
	}
	if showTags {
		numColumns++
	}

	// Reserve space for table borders and padding (roughly 3 chars per column)
	borderPadding := numColumns * 3
	availableWidth := termWidth - borderPadding

	// Names are highest priority and should display in single lines
	maxNameWidth := 0
	maxTagWidth := 0
	for _, n := range notes {
		if w := runewidth.StringWidth(n.Name); w > maxNameWidth {
			maxNameWidth = w
		}
		for _, tag := range n.Tags {
			if w := runewidth.StringWidth(tag); w > maxTagWidth {
				maxTagWidth = w
			}
		}
	}

	nameWidth := maxNameWidth
	if nameWidth < 10 {
		nameWidth = 10
	}
	// Cap at a high value to keep extremely long names from breaking layout
	if nameWidth > 40 {
		nameWidth = 40
	}

	// Tags render one per line, so the column only needs the longest tag
	tagsWidth := 0
	if showTags {
		tagsWidth = maxTagWidth + 1
		if tagsWidth < 5 {
			tagsWidth = 5
		}
		if tagsWidth > 20 {
			tagsWidth = 20
		}
	}

	// Paths take whatever space remains
	pathWidth := 0
	if showPaths {
		pathWidth = availableWidth - nameWidth - tagsWidth
		if pathWidth < 20 {
			pathWidth = 20
		}
	}

	return columnWidths{
		name: nameWidth,
		path: pathWidth,
		tags: tagsWidth,
	}
}

func outputTable(cmd *cobra.Command, notes []note.Note, showPaths, showTags bool) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)

	// Get terminal width and calculate column widths
	termWidth := getTerminalWidth()
	widths := calculateColumnWidths(termWidth, notes, showPaths, showTags)

	// Note: We don't set WidthMax on columns because we're manually
	// wrapping the content before adding it to the table.
	// go-pretty's WidthMax doesn't handle multi-byte characters correctly.

	header := table.Row{"Notes"}
	if showPaths {
		header = append(header, "Paths")
	}
	if showTags {
		header = append(header, "Tags")
	}
	t.AppendHeader(header)

	// Paths display relative to the working directory when possible.
	// A missing working directory leaves them absolute.
	wd := ""
	if showPaths {
		if current, err := os.Getwd(); err == nil {
			wd = current
		}
	}

	for _, n := range notes {
		row := table.Row{wrapString(n.Name, widths.name)}
		if showPaths {
			row = append(row, wrapString(displayPath(n.Path, wd), widths.path))
		}
		if showTags {
			row = append(row, strings.Join(n.Tags, ",\n"))
		}
		t.AppendRow(row)
	}

	t.Render()
}
