/*
   Copyright 2025 The tp Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package ui implements the interactive address book shell.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tanruiquan/tp/abcore/logic/command"
	"github.com/tanruiquan/tp/abcore/model/person"
)

// Executor runs command lines and exposes the persons to display.
type Executor interface {
	Execute(ctx context.Context, text string) (command.Result, error)
	FilteredPersons() []*person.Person
	AddressBookFilePath() string
}

// Model is the bubbletea model of the shell: a command box, a result pane
// and the filtered person list.
type Model struct {
	ctx      context.Context
	exec     Executor
	input    textinput.Model
	feedback string
	failed   bool
	persons  []*person.Person
	width    int
	quitting bool
	styles   Styles
}

// New returns a shell model bound to exec.
func New(ctx context.Context, exec Executor) Model {
	in := textinput.New()
	in.Placeholder = "Enter command here..."
	in.Prompt = "> "
	in.CharLimit = 512
	in.Width = 60
	in.Focus()

	styles := DefaultStyles()
	in.PromptStyle = styles.Prompt

	return Model{
		ctx:     ctx,
		exec:    exec,
		input:   in,
		persons: exec.FilteredPersons(),
		styles:  styles,
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 4 {
			m.input.Width = msg.Width - 4
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the command box text. The text stays in the box when the
// command fails so the user can correct it.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		return m, nil
	}

	res, err := m.exec.Execute(m.ctx, text)
	m.persons = m.exec.FilteredPersons()
	if err != nil {
		m.feedback = err.Error()
		m.failed = true
		return m, nil
	}

	m.input.Reset()
	m.failed = false
	m.feedback = res.Feedback
	if res.ShowHelp {
		m.feedback = command.HelpMessage()
	}
	if res.Exit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// Feedback returns the text shown in the result pane.
func (m Model) Feedback() string { return m.feedback }

// Failed reports whether the last command returned an error.
func (m Model) Failed() bool { return m.failed }

// Input returns the current command box text.
func (m Model) Input() string { return m.input.Value() }

// Quitting reports whether the shell is shutting down.
func (m Model) Quitting() bool { return m.quitting }

// View renders the header, command box, result pane and person list.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Address Book"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.feedback != "" {
		style := m.styles.Feedback
		if m.failed {
			style = m.styles.Error
		}
		b.WriteString(style.Render(m.feedback))
		b.WriteString("\n\n")
	}

	for i, p := range m.persons {
		b.WriteString(m.renderPerson(i+1, p))
		b.WriteString("\n")
	}
	if len(m.persons) == 0 {
		b.WriteString(m.styles.Footer.Render("No persons to show."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(fmt.Sprintf("%s  ·  esc to quit", m.exec.AddressBookFilePath())))
	return b.String()
}

func (m Model) renderPerson(index int, p *person.Person) string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Index.Render(fmt.Sprintf("%d.", index)),
		" ",
		m.styles.Name.Render(p.Name().String()),
	)

	lines := []string{header}
	if chips := m.renderChips(p); chips != "" {
		lines = append(lines, lipgloss.NewStyle().PaddingLeft(5).Render(chips))
	}
	lines = append(lines,
		m.styles.Detail.Render(p.Phone().String()),
		m.styles.Detail.Render(p.Email().String()),
		m.styles.Detail.Render(p.TeleHandle().String()),
	)
	if r := p.Remark().String(); r != "" {
		lines = append(lines, m.styles.Remark.Render(r))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderChips(p *person.Person) string {
	var chips []string
	for _, c := range p.ModuleCodes().Items() {
		chips = append(chips, m.styles.Chip.Render(c.Code()))
	}
	for _, t := range p.Tags().Items() {
		chips = append(chips, m.styles.Chip.Render(t.Name()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}
