package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"edscope/internal/assess"
	"edscope/internal/catalog"
	"edscope/internal/cli/formatter"
	"edscope/internal/domain"
	"edscope/internal/export"
	"edscope/internal/plot"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// rateView is the home view: six slider rows grouped by pair, a live
// classification panel for the active pair, and the shared scatter plot
// of the live point plus all saved points.
type rateView struct {
	state  *SharedState
	cursor int // index into domain.AllCriteria
	pair   int // index into domain.AllPairs

	showDefinition bool
	exporting      bool

	saved domain.ResourceCollection
}

func newRateView(state *SharedState) *rateView {
	if state.Scores == nil {
		state.Scores = domain.NewDefaultScores()
	}
	return &rateView{state: state}
}

func (v *rateView) ID() ViewID    { return ViewRate }
func (v *rateView) Title() string { return "Rate" }

func (v *rateView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "criterion")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←→", "rating")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "pair")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "definition")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "saved")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
	}
}

func (v *rateView) Init() tea.Cmd {
	return v.loadCollection()
}

func (v *rateView) loadCollection() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		return collectionLoadedMsg{collection: app.Collection.Load(context.Background())}
	}
}

func (v *rateView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case collectionLoadedMsg:
		v.saved = msg.collection
		return v, nil

	case refreshViewMsg:
		return v, v.loadCollection()

	case exportedMsg:
		v.exporting = false
		if msg.err != nil {
			return v, setStatus("export failed: " + msg.err.Error())
		}
		return v, setStatus("wrote " + msg.reportPath)

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *rateView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scores := v.state.Scores
	criterion := domain.AllCriteria[v.cursor]

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
		v.pair = v.cursor / 2
		return v, nil

	case "down", "j":
		if v.cursor < len(domain.AllCriteria)-1 {
			v.cursor++
		}
		v.pair = v.cursor / 2
		return v, nil

	case "left", "h":
		scores[criterion] = (scores[criterion] - 1).Clamp()
		return v, nil

	case "right", "l":
		scores[criterion] = (scores[criterion] + 1).Clamp()
		return v, nil

	case "1", "2", "3", "4", "5":
		scores[criterion] = domain.Rating(msg.String()[0] - '0')
		return v, nil

	case "tab":
		v.pair = (v.pair + 1) % len(domain.AllPairs)
		v.cursor = v.pair * 2
		return v, nil

	case "f":
		v.showDefinition = !v.showDefinition
		return v, nil

	case "s":
		return v, pushView(newSaveFormView(v.state))

	case "L":
		return v, pushView(newSavedListView(v.state))

	case "e":
		return v, v.export()
	}
	return v, nil
}

// export runs synchronously as a single tea.Cmd; the exporting marker
// is cleared when exportedMsg arrives, on success and failure alike.
func (v *rateView) export() tea.Cmd {
	v.exporting = true
	scores := v.state.Scores.Clone()
	col := v.saved
	return func() tea.Msg {
		res, err := export.WriteReport(".", scores, col, time.Now())
		return exportedMsg{reportPath: res.ReportPath, err: err}
	}
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *rateView) View() string {
	left := v.renderSliders()
	right := v.renderSummary()
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right)
}

func (v *rateView) renderSliders() string {
	var b strings.Builder
	for pi, p := range domain.AllPairs {
		title := p.Title
		if pi == v.pair {
			b.WriteString(formatter.StyleHeader.Render(title))
		} else {
			b.WriteString(formatter.Dim(title))
		}
		b.WriteString("\n")
		for _, c := range []domain.Criterion{p.X, p.Y} {
			b.WriteString(v.renderSliderRow(c))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	active := domain.AllCriteria[v.cursor]
	b.WriteString(formatter.Dim(wrap(catalog.Descriptor(active, v.state.Scores[active]), 44)))
	if v.showDefinition {
		b.WriteString("\n\n")
		b.WriteString(formatter.StyleBlue.Render(wrap(catalog.FullDefinition(active), 44)))
	}
	return b.String()
}

func (v *rateView) renderSliderRow(c domain.Criterion) string {
	r := v.state.Scores[c]

	marker := "  "
	label := formatter.Dim(fmt.Sprintf("%-14s", c.Label()))
	if domain.AllCriteria[v.cursor] == c {
		marker = formatter.StyleHeader.Render("› ")
		label = formatter.StyleFg.Render(fmt.Sprintf("%-14s", c.Label()))
	}

	var cells []string
	for step := domain.MinRating; step <= domain.MaxRating; step++ {
		if step == r {
			cells = append(cells, formatter.RatingColor(r).Render("●"))
		} else {
			cells = append(cells, formatter.Dim("─"))
		}
	}
	return fmt.Sprintf("%s%s %s %s", marker, label, strings.Join(cells, ""), formatter.Rating(r))
}

func (v *rateView) renderSummary() string {
	p := domain.AllPairs[v.pair]
	s := assess.Summarize(p, v.state.Scores)

	var b strings.Builder
	b.WriteString(formatter.Header(fmt.Sprintf("%s (%s × %s)", p.Title, p.X.Label(), p.Y.Label())))
	b.WriteString("\n")
	b.WriteString(formatter.GateBadge(s.Gate))
	b.WriteString("\n\n")
	b.WriteString(formatter.Bold(s.Quadrant.Name))
	b.WriteString("\n")
	b.WriteString(wrap(s.DisplayText(), 48))
	b.WriteString("\n\n")

	points := make([]plot.Point, 0, len(v.saved)+1)
	for i, r := range v.saved {
		points = append(points, plot.Point{
			X:     int(r.Scores[p.X]),
			Y:     int(r.Scores[p.Y]),
			Color: plot.PointColor(i),
		})
	}
	points = append(points, plot.Point{X: int(s.X), Y: int(s.Y), Live: true})

	b.WriteString(plot.NewGrid().Render(p.X.Label(), p.Y.Label(), points))

	if v.exporting {
		b.WriteString("\n" + formatter.Dim("exporting…"))
	}
	return b.String()
}

// wrap breaks text into lines no wider than width.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
