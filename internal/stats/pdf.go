package stats

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/verte-zerg/consistency21/internal/model"
)

// ErrNoAnalysis is returned when exporting a report that was never finalized.
var ErrNoAnalysis = errors.New("no final analysis to export")

const (
	pdfChartHeight = 40.0
	pdfPageWidth   = 190.0
)

var bandColors = map[Band][3]int{
	BandHigh: {34, 197, 94},
	BandMid:  {234, 179, 8},
	BandLow:  {239, 68, 68},
}

// WritePDF exports the final report to path.
func WritePDF(path string, state model.UserState) error {
	if state.FinalAnalysis == nil {
		return ErrNoAnalysis
	}
	a := state.FinalAnalysis
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Final Report", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Final Report: %s", state.Goal)))
	pdf.Ln(12)

	rgb := bandColors[ScoreBand(a.ConsistencyScore)]
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(rgb[0], rgb[1], rgb[2])
	pdf.Cell(0, 10, fmt.Sprintf("Consistency Score: %d/100", a.ConsistencyScore))
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(12)

	section := func(title, body string) {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, tr(body), "", "", false)
		pdf.Ln(4)
	}
	list := func(title string, items []string) {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		for _, item := range items {
			pdf.MultiCell(0, 6, tr("- "+item), "", "", false)
		}
		pdf.Ln(4)
	}

	section("Executive Summary", a.Summary)
	list("Strengths", a.Strengths)
	list("Areas to Improve", a.Weaknesses)
	section("What's Next?", a.NextSteps)

	points := BuildChart(state.Reports, state.Plan)
	if len(points) > 0 {
		pdf.AddPage()
		drawMoodChart(pdf, points)
		drawCompletionChart(pdf, points)
		drawDayTable(pdf, tr, state, points)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func chartFrame(pdf *fpdf.Fpdf, title string) (x, y float64) {
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(10)
	x, y = pdf.GetX(), pdf.GetY()
	pdf.SetDrawColor(203, 213, 225)
	pdf.Rect(x, y, pdfPageWidth, pdfChartHeight, "D")
	return x, y
}

func drawMoodChart(pdf *fpdf.Fpdf, points []ChartPoint) {
	x, y := chartFrame(pdf, "Mood Trajectory")
	step := pdfPageWidth / float64(model.ProgramDays)
	pdf.SetDrawColor(99, 102, 241)
	pdf.SetLineWidth(0.6)
	var prevX, prevY float64
	for i, p := range points {
		px := x + (float64(p.Day)-0.5)*step
		py := y + pdfChartHeight - float64(p.Mood)/model.MaxMood*pdfChartHeight
		if i > 0 {
			pdf.Line(prevX, prevY, px, py)
		}
		prevX, prevY = px, py
	}
	pdf.SetLineWidth(0.2)
	pdf.SetY(y + pdfChartHeight + 6)
}

func drawCompletionChart(pdf *fpdf.Fpdf, points []ChartPoint) {
	x, y := chartFrame(pdf, "Task Completion Rate")
	step := pdfPageWidth / float64(model.ProgramDays)
	pdf.SetFillColor(16, 185, 129)
	for _, p := range points {
		h := min(p.CompletionRate, 100) / 100 * pdfChartHeight
		pdf.Rect(x+(float64(p.Day)-1)*step+1, y+pdfChartHeight-h, step-2, h, "F")
	}
	pdf.SetY(y + pdfChartHeight + 6)
}

func drawDayTable(pdf *fpdf.Fpdf, tr func(string) string, state model.UserState, points []ChartPoint) {
	widths := []float64{12, 70, 18, 18, 14, 58}
	headers := []string{"Day", "Title", "Done", "Rate", "Mood", "Notes"}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, p := range points {
		title := ""
		if d, ok := state.DayPlanFor(p.Day); ok {
			title = d.Title
		}
		cells := []string{
			fmt.Sprintf("%d", p.Day),
			title,
			fmt.Sprintf("%d/%d", p.Activities, p.TotalActivities),
			fmt.Sprintf("%.0f%%", p.CompletionRate),
			fmt.Sprintf("%d", p.Mood),
			singleLine(state.Reports[p.Day].Notes),
		}
		for i, c := range cells {
			text := tr(c)
			for len(text) > 0 && pdf.GetStringWidth(text) > widths[i]-1 {
				text = text[:len(text)-1]
			}
			pdf.CellFormat(widths[i], 6, text, "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
