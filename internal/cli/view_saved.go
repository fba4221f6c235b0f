package cli

import (
	"context"
	"fmt"
	"strings"

	"edscope/internal/cli/formatter"
	"edscope/internal/domain"
	"edscope/internal/plot"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// savedListView shows the saved collection in insertion order, with the
// same color per entry as the plot markers.
type savedListView struct {
	state   *SharedState
	entries domain.ResourceCollection
	cursor  int
	loading bool
}

func newSavedListView(state *SharedState) *savedListView {
	return &savedListView{state: state, loading: true}
}

func (v *savedListView) ID() ViewID    { return ViewSavedList }
func (v *savedListView) Title() string { return "Saved" }

func (v *savedListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load into sliders")),
	}
}

func (v *savedListView) Init() tea.Cmd {
	return v.load()
}

func (v *savedListView) load() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		return collectionLoadedMsg{collection: app.Collection.Load(context.Background())}
	}
}

func (v *savedListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case collectionLoadedMsg:
		v.loading = false
		v.entries = msg.collection
		if v.cursor >= len(v.entries) && v.cursor > 0 {
			v.cursor = len(v.entries) - 1
		}
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *savedListView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil

	case "down", "j":
		if v.cursor < len(v.entries)-1 {
			v.cursor++
		}
		return v, nil

	case "d", "x":
		if len(v.entries) == 0 {
			return v, nil
		}
		entry := v.entries[v.cursor]
		return v, pushView(newDeleteConfirmView(v.state, entry))

	case "enter":
		if len(v.entries) == 0 {
			return v, nil
		}
		// Copy the snapshot back into the live sliders for re-rating.
		v.state.Scores = v.entries[v.cursor].Scores.Clone()
		return v, tea.Batch(popView,
			setStatus("loaded "+v.entries[v.cursor].Name))
	}
	return v, nil
}

func (v *savedListView) View() string {
	if v.loading {
		return formatter.Dim("loading…")
	}
	if len(v.entries) == 0 {
		return formatter.Dim("No saved resources yet. Press 's' on the rate screen to save one.")
	}

	// Window the list to the rows available, keeping the cursor visible.
	visible := len(v.entries)
	if h := v.state.ContentHeight(); h > 0 && h < visible {
		visible = h
	}
	start := 0
	if v.cursor >= visible {
		start = v.cursor - visible + 1
	}

	var b strings.Builder
	for i := start; i < start+visible && i < len(v.entries); i++ {
		r := v.entries[i]
		marker := "  "
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("› ")
		}
		dot := lipgloss.NewStyle().Foreground(plot.PointColor(i)).Render("●")

		var ratings []string
		for _, c := range domain.AllCriteria {
			ratings = append(ratings, formatter.RatingColor(r.Scores[c]).Render(fmt.Sprintf("%d", r.Scores[c])))
		}

		name := r.Name
		if i == v.cursor {
			name = formatter.Bold(name)
		}
		fmt.Fprintf(&b, "%s%s %s  %s  %s\n",
			marker, dot, name,
			strings.Join(ratings, " "),
			formatter.Dim(shortID(r.ID)))
	}
	return b.String()
}
