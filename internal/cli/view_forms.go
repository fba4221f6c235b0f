package cli

import (
	"context"
	"fmt"

	"edscope/internal/cli/formatter"
	"edscope/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// saveFormView collects a name and snapshots the live scores.
type saveFormView struct {
	state *SharedState
	form  *huh.Form
	name  string
	done  bool
}

func newSaveFormView(state *SharedState) *saveFormView {
	v := &saveFormView{state: state}
	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Resource name").
				Placeholder(fmt.Sprintf("Resource %d", len(state.App.Collection.Load(context.Background()))+1)).
				Value(&v.name),
		),
	).WithTheme(edscopeHuhTheme()).WithShowHelp(false)
	return v
}

func (v *saveFormView) ID() ViewID    { return ViewSaveForm }
func (v *saveFormView) Title() string { return "Save" }

func (v *saveFormView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *saveFormView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *saveFormView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, popView
	}

	if saved, ok := msg.(savedMsg); ok {
		if saved.err != nil {
			return v, tea.Batch(
				popView,
				setStatus("save failed: "+saved.err.Error()),
			)
		}
		return v, tea.Batch(
			popView,
			func() tea.Msg { return refreshViewMsg{} },
			setStatus("saved "+saved.resource.Name),
		)
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted && !v.done {
		v.done = true
		return v, v.save()
	}
	return v, cmd
}

func (v *saveFormView) save() tea.Cmd {
	app := v.state.App
	name := v.name
	scores := v.state.Scores.Clone()
	return func() tea.Msg {
		res, err := app.Collection.Save(context.Background(), name, scores)
		return savedMsg{resource: res, err: err}
	}
}

func (v *saveFormView) View() string {
	return v.form.View()
}

// deleteConfirmView asks before removing a saved entry.
type deleteConfirmView struct {
	state   *SharedState
	entry   domain.SavedResource
	form    *huh.Form
	confirm bool
	done    bool
}

func newDeleteConfirmView(state *SharedState, entry domain.SavedResource) *deleteConfirmView {
	v := &deleteConfirmView{state: state, entry: entry}
	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q?", entry.Name)).
				Affirmative("Delete").
				Negative("Keep").
				Value(&v.confirm),
		),
	).WithTheme(edscopeHuhTheme()).WithShowHelp(false)
	return v
}

func (v *deleteConfirmView) ID() ViewID    { return ViewDeleteConfirm }
func (v *deleteConfirmView) Title() string { return "Delete" }

func (v *deleteConfirmView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *deleteConfirmView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *deleteConfirmView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, popView
	}

	if deleted, ok := msg.(deletedMsg); ok {
		status := "nothing deleted"
		if deleted.err != nil {
			status = "delete failed: " + deleted.err.Error()
		} else if deleted.removed {
			status = "deleted " + v.entry.Name
		}
		return v, tea.Batch(
			popView,
			func() tea.Msg { return refreshViewMsg{} },
			setStatus(status),
		)
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted && !v.done {
		v.done = true
		if !v.confirm {
			return v, popView
		}
		return v, v.delete()
	}
	return v, cmd
}

func (v *deleteConfirmView) delete() tea.Cmd {
	app := v.state.App
	id := v.entry.ID
	return func() tea.Msg {
		removed, err := app.Collection.Delete(context.Background(), id)
		return deletedMsg{removed: removed, err: err}
	}
}

func (v *deleteConfirmView) View() string {
	return v.form.View()
}

// edscopeHuhTheme matches the formatter palette.
func edscopeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = formatter.StyleHeader
	t.Focused.FocusedButton = formatter.StyleFg.Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = formatter.StyleDim.Padding(0, 1)
	t.Focused.TextInput.Cursor = formatter.StyleHeader
	t.Focused.TextInput.Prompt = formatter.StyleHeader
	t.Focused.TextInput.Text = formatter.StyleFg
	t.Focused.TextInput.Placeholder = formatter.StyleDim
	t.Focused.Description = formatter.StyleDim

	t.Blurred.Title = formatter.StyleDim
	t.Blurred.TextInput.Prompt = formatter.StyleDim
	t.Blurred.TextInput.Text = formatter.StyleDim

	return t
}
