package cli

import (
	"edscope/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation and lifecycle messages passed between views and the root
// model.

// pushViewMsg pushes a new view onto the stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the top view off the stack.
type popViewMsg struct{}

// refreshViewMsg asks every view on the stack to reload its data, used
// after mutations made in views above them.
type refreshViewMsg struct{}

// statusMsg sets a transient one-line notice in the status bar.
type statusMsg struct {
	text string
}

// collectionLoadedMsg delivers the saved collection to a view.
type collectionLoadedMsg struct {
	collection domain.ResourceCollection
}

// savedMsg reports a completed save.
type savedMsg struct {
	resource domain.SavedResource
	err      error
}

// deletedMsg reports a completed delete.
type deletedMsg struct {
	removed bool
	err     error
}

// exportedMsg reports a completed export run.
type exportedMsg struct {
	reportPath string
	err        error
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Msg { return popViewMsg{} }

func setStatus(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}
