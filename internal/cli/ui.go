package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/apidoc/pkg/export"
	"github.com/matzehuels/apidoc/pkg/group"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleKey = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Width(12).Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Counts
// =============================================================================

// printCounts prints labeled counts on a single dim line, skipping zeros.
func printCounts(w io.Writer, labels []string, counts []int) {
	var parts []string
	for i, n := range counts {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, labels[i]))
		}
	}
	if len(parts) == 0 {
		parts = []string{"nothing selected"}
	}
	fmt.Fprintln(w, "  "+StyleDim.Render(strings.Join(parts, " · ")))
}

// =============================================================================
// Group Forest
// =============================================================================

// printGroupTree prints every group of res, indented by depth, with its
// direct and total bundle counts. Bundles are listed under their group when
// bundles is set.
func printGroupTree(w io.Writer, res *group.Result, bundles bool) {
	res.Walk(func(g *group.Group, depth int) bool {
		indent := strings.Repeat("  ", depth)
		name := StyleValue.Render(g.Name)
		if depth == 0 {
			name = StyleTitle.Render(g.Name)
		}
		counts := fmt.Sprintf("%d/%d", len(g.BundleIDs), group.TotalBundles(g))
		fmt.Fprintf(w, "%s%s %s\n", indent, name, StyleNumber.Render(counts))
		if bundles {
			for _, id := range g.BundleIDs {
				fmt.Fprintf(w, "%s  %s\n", indent, StyleDim.Render(id))
			}
		}
		return true
	})
}

// =============================================================================
// Exporter Table
// =============================================================================

// printExporters prints one aligned row per exporter descriptor.
func printExporters(w io.Writer, descs []export.Descriptor) {
	width := 0
	for _, d := range descs {
		width = max(width, lipgloss.Width(d.Name))
	}
	nameStyle := StyleHighlight.Width(width + 2)
	for _, d := range descs {
		fmt.Fprintln(w, nameStyle.Render(d.Name)+StyleValue.Render(d.Title)+" "+StyleDim.Render("("+d.Mimetype+")"))
		if d.Description != "" {
			fmt.Fprintln(w, strings.Repeat(" ", width+2)+StyleDim.Render(d.Description))
		}
		for _, key := range d.Properties.Keys() {
			fmt.Fprintln(w, strings.Repeat(" ", width+4)+StyleDim.Render(key+"="+d.Properties[key]))
		}
	}
}

// printNewline prints an empty line.
func printNewline(w io.Writer) {
	fmt.Fprintln(w)
}
