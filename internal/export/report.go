// Package export writes the dated assessment report: a markdown summary
// of the current ratings plus one SVG scatter per axis pair. Both
// artifacts position points through plot.ToPosition, so they agree with
// the terminal view.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"edscope/internal/assess"
	"edscope/internal/catalog"
	"edscope/internal/domain"
	"edscope/internal/plot"
)

const (
	filePrefix = "edscope"
	dateLayout = "2006-01-02"

	svgWidth   = 360.0
	svgHeight  = 360.0
	svgPadding = 30.0
)

// Result lists the files a report run produced.
type Result struct {
	ReportPath string
	PlotPaths  []string
}

// WriteReport renders the markdown report and per-pair SVG plots into
// dir. Filenames carry the calendar date of `when`.
func WriteReport(dir string, scores domain.Scores, col domain.ResourceCollection, when time.Time) (Result, error) {
	if err := scores.Validate(); err != nil {
		return Result{}, fmt.Errorf("exporting report: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Result{}, fmt.Errorf("creating export directory: %w", err)
	}

	date := when.Format(dateLayout)
	summaries := assess.SummarizeAll(scores)

	var res Result
	res.ReportPath = filepath.Join(dir, fmt.Sprintf("%s-report-%s.md", filePrefix, date))
	if err := os.WriteFile(res.ReportPath, []byte(renderMarkdown(summaries, scores, col, date)), 0644); err != nil {
		return Result{}, fmt.Errorf("writing report: %w", err)
	}

	for _, s := range summaries {
		path := filepath.Join(dir, fmt.Sprintf("%s-plot-%s-%s.svg",
			filePrefix, strings.ToLower(string(s.Pair.Code)), date))
		if err := os.WriteFile(path, []byte(renderSVG(s.Pair, scores, col)), 0644); err != nil {
			return Result{}, fmt.Errorf("writing plot %s: %w", s.Pair.Code, err)
		}
		res.PlotPaths = append(res.PlotPaths, path)
	}
	return res, nil
}

func renderMarkdown(summaries []assess.Summary, scores domain.Scores, col domain.ResourceCollection, date string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# edscope assessment — %s\n\n", date)

	b.WriteString("## Ratings\n\n")
	for _, c := range domain.AllCriteria {
		fmt.Fprintf(&b, "- %s: %d — %s\n", c.Label(), scores[c], catalog.Descriptor(c, scores[c]))
	}

	b.WriteString("\n## Classification\n\n")
	for _, s := range summaries {
		fmt.Fprintf(&b, "### %s (%s × %s)\n\n", s.Pair.Title, s.Pair.X.Label(), s.Pair.Y.Label())
		fmt.Fprintf(&b, "**%s**", s.Quadrant.Name)
		if s.Gate {
			b.WriteString(" _(evidence gate: at least one rating at the boundary — treat as provisional)_")
		}
		fmt.Fprintf(&b, "\n\n%s\n\n", s.DisplayText())
	}

	if len(col) > 0 {
		b.WriteString("## Saved resources\n\n")
		b.WriteString("| # | Name |")
		for _, c := range domain.AllCriteria {
			fmt.Fprintf(&b, " %s |", c.Label()[:3])
		}
		b.WriteString("\n|---|------|")
		b.WriteString(strings.Repeat("----|", len(domain.AllCriteria)))
		b.WriteString("\n")
		for i, r := range col {
			fmt.Fprintf(&b, "| %d | %s |", i+1, r.Name)
			for _, c := range domain.AllCriteria {
				fmt.Fprintf(&b, " %d |", r.Scores[c])
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderSVG(pair domain.AxisPair, scores domain.Scores, col domain.ResourceCollection) string {
	totalW := svgWidth + 2*svgPadding
	totalH := svgHeight + 2*svgPadding

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		totalW, totalH, totalW, totalH)
	fmt.Fprintf(&b, `  <rect width="%.0f" height="%.0f" fill="#fbf1c7"/>`+"\n", totalW, totalH)

	// Frame and quadrant split at the midpoint of the rating space.
	fmt.Fprintf(&b, `  <rect x="%.0f" y="%.0f" width="%.0f" height="%.0f" fill="none" stroke="#928374"/>`+"\n",
		svgPadding, svgPadding, svgWidth, svgHeight)
	midX, midY := plot.ToPosition(3, 3, svgWidth, svgHeight, svgPadding)
	fmt.Fprintf(&b, `  <line x1="%.1f" y1="%.0f" x2="%.1f" y2="%.0f" stroke="#928374" stroke-dasharray="4"/>`+"\n",
		midX, svgPadding, midX, svgPadding+svgHeight)
	fmt.Fprintf(&b, `  <line x1="%.0f" y1="%.1f" x2="%.0f" y2="%.1f" stroke="#928374" stroke-dasharray="4"/>`+"\n",
		svgPadding, midY, svgPadding+svgWidth, midY)

	// Axis labels.
	fmt.Fprintf(&b, `  <text x="%.0f" y="%.0f" font-size="12" text-anchor="middle">%s</text>`+"\n",
		svgPadding+svgWidth/2, totalH-8, pair.X.Label())
	fmt.Fprintf(&b, `  <text x="12" y="%.0f" font-size="12" text-anchor="middle" transform="rotate(-90 12 %.0f)">%s</text>`+"\n",
		svgPadding+svgHeight/2, svgPadding+svgHeight/2, pair.Y.Label())

	// Saved points in insertion order, then the live point on top.
	for i, r := range col {
		cx, cy := plot.ToPosition(int(r.Scores[pair.X]), int(r.Scores[pair.Y]), svgWidth, svgHeight, svgPadding)
		fmt.Fprintf(&b, `  <circle cx="%.1f" cy="%.1f" r="6" fill="%s"><title>%s</title></circle>`+"\n",
			cx, cy, plot.PointColor(i), escapeXML(r.Name))
	}
	cx, cy := plot.ToPosition(int(scores[pair.X]), int(scores[pair.Y]), svgWidth, svgHeight, svgPadding)
	fmt.Fprintf(&b, `  <circle cx="%.1f" cy="%.1f" r="8" fill="#282828" stroke="#ebdbb2" stroke-width="2"/>`+"\n", cx, cy)

	b.WriteString("</svg>\n")
	return b.String()
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
