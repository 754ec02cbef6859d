package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Series is a named data series drawn against a fixed value range.
// When Max <= Min the range is taken from the data.
type Series struct {
	Name   string
	Values []float64
	Min    float64
	Max    float64
	Unit   string
}

type dash struct {
	name   string
	period int
	on     int
}

const (
	defaultPlotHeight   = 8
	minPlotWidth        = 10
	axisSeparator       = " ┤ "
	colorReset          = "\x1b[0m"
	terminalWidthBackup = 80
)

var dashes = []dash{
	{name: "solid", period: 1, on: 1},
	{name: "dashed", period: 6, on: 3},
	{name: "dotted", period: 4, on: 1},
}

var seriesColors = []string{
	"\x1b[35m", // magenta
	"\x1b[36m", // cyan
	"\x1b[33m", // yellow
}

// PlotSeries draws the series as a braille line chart. All series share the
// range of the first one; a width <= 0 sizes the plot to the terminal.
func PlotSeries(w io.Writer, title string, series []Series, width, height int, color bool) error {
	series = nonEmpty(series)
	if len(series) == 0 {
		return nil
	}
	if height <= 0 {
		height = defaultPlotHeight
	}
	if width <= 0 {
		width = PlotWidthFor(terminalWidth())
	}
	if width < minPlotWidth {
		width = minPlotWidth
	}

	lo, hi := seriesRange(series[0])
	labels := axisLabels(lo, hi, height, series[0].Unit)
	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, runewidth.StringWidth(l))
	}

	grids := make([][][]uint8, len(series))
	for si, s := range series {
		grids[si] = newGrid(height, width)
		style := dashes[si%len(dashes)]
		points := resample(s.Values, width)
		prevX, prevY := -1, -1
		for x, v := range points {
			px, py := x*2, valueToDotRow(v, lo, hi, height*4)
			if prevX < 0 {
				if style.plots(px) {
					setDot(grids[si], px, py)
				}
			} else {
				bresenham(prevX, prevY, px, py, func(dx, dy int) {
					if style.plots(dx) {
						setDot(grids[si], dx, dy)
					}
				})
			}
			prevX, prevY = px, py
		}
	}

	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	for y := 0; y < height; y++ {
		var row strings.Builder
		row.WriteString(runewidth.FillLeft(labels[y], labelWidth))
		row.WriteString(axisSeparator)
		for x := 0; x < width; x++ {
			mask, owner := mergeCell(grids, x, y)
			ch := rune(0x2800 + int(mask))
			if color && owner >= 0 {
				row.WriteString(seriesColors[owner%len(seriesColors)])
				row.WriteRune(ch)
				row.WriteString(colorReset)
				continue
			}
			row.WriteRune(ch)
		}
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, legend(series, color)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// PlotWidthFor returns the plot area width that fits totalWidth including the axis.
func PlotWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		return minPlotWidth
	}
	axis := runewidth.StringWidth("100%") + runewidth.StringWidth(axisSeparator)
	return max(totalWidth-axis, minPlotWidth)
}

// UseColor reports whether w is a terminal that should receive ANSI colors.
func UseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func nonEmpty(series []Series) []Series {
	out := make([]Series, 0, len(series))
	for _, s := range series {
		if len(s.Values) > 0 {
			out = append(out, s)
		}
	}
	return out
}

func seriesRange(s Series) (float64, float64) {
	if s.Max > s.Min {
		return s.Min, s.Max
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range s.Values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi-lo < 1e-9 {
		lo--
		hi++
	}
	return lo, hi
}

func axisLabels(lo, hi float64, height int, unit string) []string {
	labels := make([]string, height)
	format := func(v float64) string {
		return fmt.Sprintf("%s%s", trimFloat(v), unit)
	}
	labels[0] = format(hi)
	if height > 2 {
		labels[height/2] = format(lo + (hi-lo)/2)
	}
	if height > 1 {
		labels[height-1] = format(lo)
	}
	return labels
}

func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func newGrid(height, width int) [][]uint8 {
	grid := make([][]uint8, height)
	for y := range grid {
		grid[y] = make([]uint8, width)
	}
	return grid
}

// mergeCell ORs the braille masks of every series; owner is the first series with a dot.
func mergeCell(grids [][][]uint8, x, y int) (uint8, int) {
	var mask uint8
	owner := -1
	for i, grid := range grids {
		if grid[y][x] == 0 {
			continue
		}
		if owner < 0 {
			owner = i
		}
		mask |= grid[y][x]
	}
	return mask, owner
}

func (d dash) plots(x int) bool {
	if d.period <= 1 {
		return true
	}
	return x%d.period < d.on
}

// resample stretches or averages values onto width columns.
func resample(values []float64, width int) []float64 {
	out := make([]float64, width)
	n := len(values)
	switch {
	case n == width:
		copy(out, values)
	case n > width:
		for i := range out {
			start := i * n / width
			end := max((i+1)*n/width, start+1)
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
	case n == 1 || width == 1:
		for i := range out {
			out[i] = values[0]
		}
	default:
		for i := range out {
			pos := float64(i) * float64(n-1) / float64(width-1)
			idx := int(pos)
			if idx >= n-1 {
				out[i] = values[n-1]
				continue
			}
			frac := pos - float64(idx)
			out[i] = values[idx]*(1-frac) + values[idx+1]*frac
		}
	}
	return out
}

func valueToDotRow(v, lo, hi float64, rows int) int {
	if rows <= 1 {
		return 0
	}
	pos := (v - lo) / (hi - lo)
	row := int(math.Round((1 - pos) * float64(rows-1)))
	return min(max(row, 0), rows-1)
}

func legend(series []Series, color bool) string {
	parts := make([]string, 0, len(series))
	for i, s := range series {
		label := fmt.Sprintf("%c %s (%s)", rune(0x2800+0x01), s.Name, dashes[i%len(dashes)].name)
		if color {
			label = seriesColors[i%len(seriesColors)] + label + colorReset
		}
		parts = append(parts, label)
	}
	return "Legend: " + strings.Join(parts, "  ")
}

func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// braille dot bits indexed by [column][row] within a 2x4 cell.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func setDot(grid [][]uint8, x, y int) {
	cy, cx := y/4, x/2
	if y < 0 || x < 0 || cy >= len(grid) || cx >= len(grid[cy]) {
		return
	}
	grid[cy][cx] |= dotBits[x%2][y%4]
}
