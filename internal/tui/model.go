// Package tui is an interactive browser over a finished listing.
package tui

import (
	"sort"
	"strings"

	"github.com/michaelscutari/sls/internal/entry"

	tea "github.com/charmbracelet/bubbletea"
)

// SortColumn represents the current sort field.
type SortColumn int

const (
	SortByOrder SortColumn = iota
	SortBySize
	SortByName
	SortByModified
)

func (s SortColumn) String() string {
	switch s {
	case SortBySize:
		return "size"
	case SortByName:
		return "name"
	case SortByModified:
		return "modified"
	default:
		return "order"
	}
}

// Model holds the TUI state.
type Model struct {
	root         string
	allEntries   []entry.Record // traversal order, never reordered
	entries      []entry.Record // filtered and sorted view
	totalSize    uint64
	cursor       int
	sort         SortColumn
	width        int
	height       int
	filter       string
	filterActive bool
}

// NewModel creates a browser over records listed from root.
func NewModel(root string, records []entry.Record) *Model {
	m := &Model{
		root:       root,
		allEntries: records,
		sort:       SortByOrder,
	}
	for _, r := range records {
		m.totalSize += r.Size
	}
	m.applyFilter()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Selected returns the record under the cursor.
func (m *Model) Selected() (entry.Record, bool) {
	if len(m.entries) == 0 || m.cursor >= len(m.entries) {
		return entry.Record{}, false
	}
	return m.entries[m.cursor], true
}

func (m *Model) helpLine() string {
	if m.filterActive {
		return "Type to filter | Enter: apply | Esc: clear | q: quit"
	}
	return "↑/↓ move | o/s/n/m: sort | /: filter | q: quit"
}

func (m *Model) setSort(s SortColumn) {
	m.sort = s
	m.applyFilter()
}

func (m *Model) applyFilter() {
	filtered := make([]entry.Record, 0, len(m.allEntries))
	needle := strings.ToLower(m.filter)
	for _, e := range m.allEntries {
		if needle == "" || strings.Contains(strings.ToLower(e.Path), needle) {
			filtered = append(filtered, e)
		}
	}

	switch m.sort {
	case SortBySize:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Size > filtered[j].Size
		})
	case SortByName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Name < filtered[j].Name
		})
	case SortByModified:
		sort.SliceStable(filtered, func(i, j int) bool {
			a, b := filtered[i].ModTime, filtered[j].ModTime
			if a == nil || b == nil {
				return a != nil
			}
			return a.After(*b)
		})
	}

	m.entries = filtered
	m.cursor = 0
}
