// Package tui is the interactive roster screen: the four-field entry form,
// the roll search box and a read-only display area.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrled/suns/roster/internal/model"
	"github.com/mrled/suns/roster/internal/presenter"
	"github.com/mrled/suns/roster/internal/usecase/roster"
)

// Input indexes. The first four make up the entry form.
const (
	inputName = iota
	inputRoll
	inputGrade
	inputEmail
	inputSearch
	inputCount
)

var inputLabels = [inputCount]string{"Name:", "Roll Number:", "Grade:", "Email:", "Roll Number:"}

// opResultMsg carries the outcome of a roster operation back to Update
type opResultMsg struct {
	display   *string
	status    string
	isError   bool
	clearForm bool
}

type Model struct {
	ctx      context.Context
	uc       *roster.RosterUseCase
	inputs   []textinput.Model
	focus    int
	display  string
	status   string
	isError  bool
	quitting bool
}

func NewModel(ctx context.Context, uc *roster.RosterUseCase) Model {
	inputs := make([]textinput.Model, inputCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 0
		inputs[i] = ti
	}
	inputs[inputEmail].Placeholder = "name@example.com"
	inputs[inputName].Focus()

	return Model{
		ctx:    ctx,
		uc:     uc,
		inputs: inputs,
	}
}

// Run starts the interactive screen and blocks until the user quits
func Run(ctx context.Context, uc *roster.RosterUseCase) error {
	p := tea.NewProgram(NewModel(ctx, uc), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case opResultMsg:
		if msg.display != nil {
			m.display = *msg.display
		}
		m.status = msg.status
		m.isError = msg.isError
		if msg.clearForm {
			for i := inputName; i <= inputEmail; i++ {
				m.inputs[i].SetValue("")
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab", "down":
			cmd := m.setFocus((m.focus + 1) % inputCount)
			return m, cmd
		case "shift+tab", "up":
			cmd := m.setFocus((m.focus + inputCount - 1) % inputCount)
			return m, cmd
		case "enter":
			if m.focus == inputSearch {
				return m, m.search()
			}
			return m, m.add()
		case "ctrl+f":
			return m, m.search()
		case "ctrl+r":
			return m, m.remove()
		case "ctrl+l":
			return m, m.displayAll()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m Model) value(i int) string {
	return strings.TrimSpace(m.inputs[i].Value())
}

func textPtr(s string) *string {
	return &s
}

func (m Model) add() tea.Cmd {
	name, roll, grade, email := m.value(inputName), m.value(inputRoll), m.value(inputGrade), m.value(inputEmail)
	ctx, uc := m.ctx, m.uc

	return func() tea.Msg {
		_, result, err := uc.Enroll(ctx, name, roll, grade, email)
		switch {
		case errors.Is(err, model.ErrMissingField):
			return opResultMsg{status: presenter.MsgAllFieldsRequired, isError: true}
		case err != nil:
			return opResultMsg{status: err.Error(), isError: true}
		case result.PersistErr != nil:
			return opResultMsg{status: presenter.PersistWarning(result.PersistErr), isError: true, clearForm: true}
		}
		return opResultMsg{status: presenter.MsgAdded, clearForm: true}
	}
}

func (m Model) search() tea.Cmd {
	roll := m.value(inputSearch)
	ctx, uc := m.ctx, m.uc

	return func() tea.Msg {
		if roll == "" {
			return opResultMsg{status: presenter.MsgEnterRollSearch, isError: true}
		}
		s, err := uc.Lookup(ctx, roll)
		switch {
		case errors.Is(err, model.ErrNotFound):
			return opResultMsg{display: textPtr(presenter.NotFound(roll))}
		case err != nil:
			return opResultMsg{status: err.Error(), isError: true}
		}
		return opResultMsg{display: textPtr(presenter.Found(s))}
	}
}

func (m Model) remove() tea.Cmd {
	roll := m.value(inputSearch)
	ctx, uc := m.ctx, m.uc

	return func() tea.Msg {
		if roll == "" {
			return opResultMsg{status: presenter.MsgEnterRollRemove, isError: true}
		}
		result, err := uc.Withdraw(ctx, roll)
		if err != nil {
			return opResultMsg{status: err.Error(), isError: true}
		}
		if !result.Changed {
			return opResultMsg{display: textPtr(presenter.MsgNotRemoved)}
		}
		msg := opResultMsg{display: textPtr(presenter.Removed(roll))}
		if result.PersistErr != nil {
			msg.status = presenter.PersistWarning(result.PersistErr)
			msg.isError = true
		}
		return msg
	}
}

func (m Model) displayAll() tea.Cmd {
	ctx, uc := m.ctx, m.uc

	return func() tea.Msg {
		students, err := uc.List(ctx, roster.ListOptions{})
		if err != nil {
			return opResultMsg{status: err.Error(), isError: true}
		}
		return opResultMsg{display: textPtr(strings.TrimSuffix(presenter.Listing(students), "\n"))}
	}
}

func (m Model) inputRow(i int) string {
	label := labelStyle.Render(inputLabels[i])
	if i == m.focus {
		label = focusStyle.Render(labelStyle.Render(inputLabels[i]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, label, m.inputs[i].View())
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Student Management System"))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Enter Student Details"))
	b.WriteString("\n")
	for i := inputName; i <= inputEmail; i++ {
		b.WriteString(m.inputRow(i))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Search or Remove Student"))
	b.WriteString("\n")
	b.WriteString(m.inputRow(inputSearch))
	b.WriteString("\n")

	if m.status != "" {
		style := statusStyle
		if m.isError {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	display := m.display
	if display == "" {
		display = " "
	}
	b.WriteString(displayStyle.Render(display))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("enter add/search • ctrl+l display all • ctrl+f search • ctrl+r remove • tab next field • esc quit"))
	b.WriteString("\n")
	return b.String()
}
