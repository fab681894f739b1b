// Package ui provides terminal UI helpers built on bubbletea.
package ui

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Spinner wraps a bubbles spinner for simple non-interactive use while a
// subprocess (typically a fetch) is running. It renders on stderr.
type Spinner struct {
	program *tea.Program
	model   *spinnerModel
	done    chan struct{}
	mu      sync.Mutex
}

type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m spinnerModel) View() string {
	if m.done || m.message == "" {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}

// NewSpinner creates a new spinner with the given message.
func NewSpinner(message string) *Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &Spinner{
		model: &spinnerModel{spinner: s, message: message},
	}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	s.start(tea.WithOutput(os.Stderr))
}

func (s *Spinner) start(opts ...tea.ProgramOption) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.program = tea.NewProgram(s.model, opts...)
	s.done = make(chan struct{})
	go func(p *tea.Program, done chan struct{}) {
		defer close(done)
		_, _ = p.Run()
	}(s.program, s.done)
}

// UpdateMessage changes the spinner message.
func (s *Spinner) UpdateMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.model != nil {
		s.model.message = message
	}
}

// Stop stops the spinner and clears the line. It blocks until the program
// has shut down and restored the terminal, so whatever writes to stderr
// next cannot interleave with the final repaint.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.model != nil {
		s.model.done = true
	}
	if s.program != nil {
		s.program.Quit()
		<-s.done
	}
}
