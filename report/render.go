package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"
)

const (
	summaryColWidth = 6
	profileWidth    = 12 // one sparkline column per month
	profileHeight   = 1
	missingCell     = "-"
)

var (
	summaryHeaderStyle = lipgloss.NewStyle().Bold(true)
	summaryYearStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
)

// RenderSummary writes a fixed-width month-by-year view of the table followed
// by a per-year monthly profile sparkline. Absent month/year combinations
// print as "-" to keep them visually distinct from a zero count.
func RenderSummary(w io.Writer, t SummaryTable) error {
	var b strings.Builder

	b.WriteString(summaryHeaderStyle.Render(summaryHeaderLine(t.Years)))
	b.WriteByte('\n')

	for _, month := range t.Months() {
		fmt.Fprintf(&b, "%*d", summaryColWidth, month)
		for _, year := range t.Years {
			cell := missingCell
			if n, ok := t.Count(month, year); ok {
				cell = strconv.Itoa(n)
			}
			fmt.Fprintf(&b, "%*s", summaryColWidth, cell)
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	for _, year := range t.Years {
		b.WriteString(summaryYearStyle.Render(strconv.Itoa(year)))
		b.WriteByte(' ')
		b.WriteString(monthlyProfile(t, year))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func summaryHeaderLine(years []int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%*s", summaryColWidth, "MONTH")
	for _, year := range years {
		fmt.Fprintf(&b, "%*d", summaryColWidth, year)
	}
	return b.String()
}

// monthlyProfile renders a twelve-column sparkline of one year's counts,
// with absent months drawn at zero height.
func monthlyProfile(t SummaryTable, year int) string {
	spark := sparkline.New(profileWidth, profileHeight)
	for month := 1; month <= 12; month++ {
		n, _ := t.Count(month, year)
		spark.Push(float64(n))
	}
	spark.Draw()
	return strings.TrimRight(spark.View(), "\n")
}
