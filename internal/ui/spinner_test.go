package ui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSpinnerModelQuitsWhenDone(t *testing.T) {
	t.Parallel()
	s := NewSpinner("Fetching origin...")
	s.model.done = true

	_, cmd := s.model.Update(s.model.spinner.Tick())
	if cmd == nil {
		t.Fatal("Update after done = nil cmd, want tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("Update after done = %T, want tea.QuitMsg", cmd())
	}
	if got := s.model.View(); got != "" {
		t.Errorf("View after done = %q, want empty", got)
	}
}

func TestSpinnerStopWaitsForShutdown(t *testing.T) {
	t.Parallel()
	s := NewSpinner("Fetching origin...")

	var out bytes.Buffer
	s.start(
		tea.WithOutput(&out),
		tea.WithInput(bytes.NewReader(nil)),
		tea.WithoutSignalHandler(),
	)
	s.Stop()

	// Stop must not return while the program goroutine is still running;
	// otherwise its teardown repaint races the next stderr writer.
	select {
	case <-s.done:
	default:
		t.Fatal("Stop returned before the spinner program exited")
	}
}
