package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/michaelscutari/sls/internal/entry"
	"github.com/michaelscutari/sls/internal/pathutil"
	"github.com/michaelscutari/sls/internal/render"
)

const (
	headerLines   = 5 // title + margin, status, header + border
	footerLines   = 3 // blank, help + margin
	colGap        = 2
	minNameWidth  = 10
	sizeColWidth  = 10
	permColWidth  = 4
	timeColWidth  = 16
	barBlockWidth = 10                                        // number of block characters
	barPctWidth   = 4                                         // " 78%" or "100%"
	barGapWidth   = 1                                         // space between blocks and pct
	barColWidth   = barBlockWidth + barGapWidth + barPctWidth // 15
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("sls - " + truncateMiddle(m.root, max(10, m.width-8))))
	b.WriteString("\n")

	status := fmt.Sprintf("Items: %s | Total: %s | Sort: %s",
		FormatCount(len(m.entries)), FormatSize(m.totalSize), m.sort)
	if sel, ok := m.Selected(); ok {
		status += fmt.Sprintf(" | Sel: %s", sel.Name)
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")

	if m.filterActive {
		b.WriteString(filterStyle.Render(fmt.Sprintf("Filter: %s_", m.filter)))
		b.WriteString("\n")
	} else if m.filter != "" {
		b.WriteString(filterStyle.Render(fmt.Sprintf("Filter: %s", m.filter)))
		b.WriteString("\n")
	}

	nameWidth := m.nameWidth()
	gap := strings.Repeat(" ", colGap)
	header := fmt.Sprintf("%*s%s%-*s%s%-*s%s%-*s%s%s",
		sizeColWidth, headerLabel("SIZE", m.sort == SortBySize, "v"),
		gap,
		permColWidth, "PERM",
		gap,
		timeColWidth, headerLabel("MODIFIED", m.sort == SortByModified, "v"),
		gap,
		nameWidth, headerLabel("PATH", m.sort == SortByName, "^"),
		gap,
		"SIZE%",
	)
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(statusStyle.Render("No entries."))
		b.WriteString("\n")
	}

	visibleRows := m.visibleRows()
	startIdx := 0
	if m.cursor >= visibleRows {
		startIdx = m.cursor - visibleRows + 1
	}
	endIdx := min(len(m.entries), startIdx+visibleRows)

	for i := startIdx; i < endIdx; i++ {
		b.WriteString(m.formatEntry(m.entries[i], i == m.cursor, nameWidth))
		b.WriteString("\n")
	}

	help := m.helpLine()
	if len(m.entries) > 0 {
		help = fmt.Sprintf("%s [%d/%d]", help, m.cursor+1, len(m.entries))
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func (m *Model) visibleRows() int {
	rows := m.height - headerLines - footerLines
	if rows < 5 {
		rows = 5
	}
	return rows
}

func (m *Model) nameWidth() int {
	used := sizeColWidth + permColWidth + timeColWidth + barColWidth + colGap*4
	w := m.width - used
	if w < minNameWidth {
		w = minNameWidth
	}
	return w
}

func (m *Model) formatEntry(e entry.Record, selected bool, nameWidth int) string {
	modified := "unknown"
	if e.ModTime != nil {
		modified = humanize.Time(*e.ModTime)
	}

	rawName := e.Path
	switch e.Kind {
	case entry.KindDir:
		rawName += "/"
	case entry.KindSymlink:
		rawName += "@"
	}
	// Icons are two cells wide.
	rawName = truncateMiddle(rawName, nameWidth-3)

	var styledName string
	switch e.Kind {
	case entry.KindDir:
		styledName = dirStyle.Render(rawName)
	case entry.KindSymlink:
		styledName = symlinkStyle.Render(rawName)
	default:
		styledName = fileStyle.Render(rawName)
	}
	icon := render.Icon(e.IsDir(), pathutil.Base(e.Path))

	pad := nameWidth - 3 - runewidth.StringWidth(rawName)
	if pad < 0 {
		pad = 0
	}

	gap := strings.Repeat(" ", colGap)
	line := fmt.Sprintf("%*s%s%-*s%s%-*s%s%s %s%s%s%s",
		sizeColWidth, FormatSize(e.Size),
		gap,
		permColWidth, e.Permission,
		gap,
		timeColWidth, truncateRight(modified, timeColWidth),
		gap,
		icon, styledName, strings.Repeat(" ", pad),
		gap,
		formatBar(e.Size, m.totalSize),
	)

	if selected {
		return selectedStyle.Render(line)
	}
	return line
}

func formatBar(entryVal, total uint64) string {
	if total == 0 || entryVal == 0 {
		empty := strings.Repeat("░", barBlockWidth)
		return barEmptyStyle.Render(empty) + fmt.Sprintf(" %3d%%", 0)
	}

	pct := float64(entryVal) / float64(total) * 100
	if pct > 100 {
		pct = 100
	}

	filled := int(math.Round(pct / 100 * float64(barBlockWidth)))
	if filled < 1 {
		filled = 1
	}
	if filled > barBlockWidth {
		filled = barBlockWidth
	}

	filledStr := barFilledStyle.Render(strings.Repeat("█", filled))
	emptyStr := barEmptyStyle.Render(strings.Repeat("░", barBlockWidth-filled))
	return filledStr + emptyStr + fmt.Sprintf(" %3d%%", int(math.Round(pct)))
}

func headerLabel(label string, active bool, dir string) string {
	if active {
		return label + dir
	}
	return label
}

// truncateRight cuts s to at most maxWidth terminal cells.
func truncateRight(s string, maxWidth int) string {
	if maxWidth <= 0 || runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// truncateMiddle keeps both ends of s within maxWidth terminal cells.
func truncateMiddle(s string, maxWidth int) string {
	if maxWidth <= 0 || runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	headWidth := (maxWidth - 3) / 2
	tailWidth := maxWidth - 3 - headWidth
	return runewidth.Truncate(s, headWidth, "") + "..." + lastCells(s, tailWidth)
}

// lastCells returns the longest suffix of s that fits in width cells.
func lastCells(s string, width int) string {
	runes := []rune(s)
	i := len(runes)
	for i > 0 {
		w := runewidth.RuneWidth(runes[i-1])
		if w > width {
			break
		}
		width -= w
		i--
	}
	return string(runes[i:])
}
