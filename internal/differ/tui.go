// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoSelection is returned when the picker is quit without choosing two
// versions.
var ErrNoSelection = errors.New("no plan versions selected")

// Version is one selectable plan version. File is set when the version is a
// plan document on disk rather than one stored by the service.
type Version struct {
	ID      string
	Name    string
	Created time.Time
	File    string
}

// SelectVersions lets the user pick two versions, oldest first in the
// returned slice.
func SelectVersions(ctx context.Context, items []Version, opts ...tea.ProgramOption) ([]Version, error) {
	if len(items) < 2 {
		return nil, fmt.Errorf("need at least two plan versions, found %d", len(items))
	}

	opts = append(opts, tea.WithContext(ctx))
	m, err := tea.NewProgram(model{items: items}, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("version picker: %w", err)
	}

	selected := m.(model).selected
	if len(selected) != 2 {
		return nil, ErrNoSelection
	}
	if selected[1].Created.Before(selected[0].Created) {
		selected[0], selected[1] = selected[1], selected[0]
	}
	return selected, nil
}

type model struct {
	items    []Version
	cursor   int
	selected []Version
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.selected = nil
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ":
		m.selected = m.toggle(m.items[m.cursor])
	case "enter":
		if len(m.selected) == 2 {
			return m, tea.Quit
		}
	}
	return m, nil
}

// toggle returns a new selection with v added or removed. At most two
// versions can be selected.
func (m model) toggle(v Version) []Version {
	out := make([]Version, 0, 2)
	found := false
	for _, s := range m.selected {
		if s.ID == v.ID {
			found = true
			continue
		}
		out = append(out, s)
	}
	if !found && len(out) < 2 {
		out = append(out, v)
	}
	return out
}

func (m model) isSelected(v Version) bool {
	for _, s := range m.selected {
		if s.ID == v.ID {
			return true
		}
	}
	return false
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString("Select two plan versions:\n\n")
	for i, v := range m.items {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		mark := " "
		if m.isSelected(v) {
			mark = "x"
		}
		fmt.Fprintf(&b, "%s [%s] %s %s %s\n", cursor, mark, v.ID, v.Created.UTC().Format("2006-01-02T15:04:05Z"), v.Name)
	}
	b.WriteString("\nSPACE: toggle, ENTER: go, Q/ESCAPE: quit\n")
	return b.String()
}
