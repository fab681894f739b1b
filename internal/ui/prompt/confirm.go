// Package prompt implements interactive confirmation prompts.
package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// ConfirmResult holds the result of a confirmation prompt.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type confirmModel struct {
	prompt    string
	confirmed bool
	done      bool
	cancelled bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.confirmed = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "enter":
			// Default to no
			m.confirmed = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s [y/N] ", m.prompt)
}

// Confirm shows a yes/no prompt and returns the user's choice. Pressing
// enter defaults to no. The prompt renders on stderr so stdout stays
// reserved for the shell wrapper; when stdin is not a terminal a plain line
// is read instead, so scripted input keeps working.
func Confirm(prompt string) (ConfirmResult, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return confirmLine(prompt)
	}

	model := confirmModel{prompt: prompt}
	p := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return ConfirmResult{}, err
	}
	m := finalModel.(confirmModel)
	return ConfirmResult{
		Confirmed: m.confirmed,
		Cancelled: m.cancelled,
	}, nil
}

// confirmLine reads one line from stdin for non-interactive callers.
func confirmLine(prompt string) (ConfirmResult, error) {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return ConfirmResult{Cancelled: true}, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return ConfirmResult{Confirmed: answer == "y" || answer == "yes"}, nil
}

// Terminal adapts Confirm to the yes/no interface the flows expect.
// A cancelled prompt counts as a decline.
type Terminal struct{}

// Confirm implements the ops.Confirmer interface.
func (Terminal) Confirm(prompt string) (bool, error) {
	res, err := Confirm(prompt)
	if err != nil {
		return false, err
	}
	return res.Confirmed && !res.Cancelled, nil
}
