// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/tfctl/bkctl/internal/log"
	"github.com/tfctl/bkctl/internal/operation"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	mediumStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	highStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// Terminal confirms mutating operations on the controlling terminal.
type Terminal struct {
	In  io.Reader
	Out io.Writer
	// IsTTY reports whether In is interactive. nil checks In itself.
	IsTTY func() bool
	// Warn receives the notice printed when confirmation is impossible. nil
	// logs it instead.
	Warn func(string)
}

var _ operation.Confirmer = (*Terminal)(nil)

// New returns a Terminal on stdin and stderr, so prompts never mix with
// command output.
func New(warn func(string)) *Terminal {
	return &Terminal{In: os.Stdin, Out: os.Stderr, Warn: warn}
}

func (t *Terminal) isTTY() bool {
	if t.IsTTY != nil {
		return t.IsTTY()
	}
	f, ok := t.In.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// Confirm asks whether to run the operation. Without a terminal it declines.
func (t *Terminal) Confirm(ctx context.Context, p operation.Prompt) (bool, error) {
	if !t.isTTY() {
		msg := fmt.Sprintf("stdin is not a terminal, not running %s (use --force)", p.Operation)
		if t.Warn != nil {
			t.Warn(msg)
		} else {
			log.Warnf("%s", msg)
		}
		return false, nil
	}

	final, err := tea.NewProgram(newModel(p),
		tea.WithContext(ctx),
		tea.WithInput(t.In),
		tea.WithOutput(t.Out),
	).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, tea.ErrProgramKilled) {
			return false, ctxErr
		}
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}

	m := final.(model)
	log.Debugf("confirm: operation=%s, answer=%q, confirmed=%v", p.Operation, m.input.Value(), m.confirmed)
	return m.confirmed, nil
}

// Accepts reports whether answer confirms an operation of the given impact.
// High impact operations need the full word.
func Accepts(impact operation.Impact, answer string) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if impact >= operation.ImpactHigh {
		return answer == "yes"
	}
	return answer == "y" || answer == "yes"
}

type model struct {
	prompt    operation.Prompt
	input     textinput.Model
	confirmed bool
	done      bool
}

func newModel(p operation.Prompt) model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 8
	if p.Impact >= operation.ImpactHigh {
		ti.Placeholder = "type yes to continue"
	} else {
		ti.Placeholder = "y/N"
	}
	ti.Focus()
	return model{prompt: p, input: ti}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.confirmed = Accepts(m.prompt.Impact, m.input.Value())
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.done {
		return ""
	}

	impact := mediumStyle
	if m.prompt.Impact >= operation.ImpactHigh {
		impact = highStyle
	}

	var b strings.Builder
	b.WriteString(questionStyle.Render(m.prompt.String()))
	b.WriteString(" ")
	b.WriteString(impact.Render(strings.ToUpper(m.prompt.Impact.String())))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}
