package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/careerworks/rostergen/internal/engine"
	"github.com/careerworks/rostergen/internal/models"
	"github.com/careerworks/rostergen/pkg/export"
)

// ConsoleRenderer writes the human-readable run report to a terminal.
type ConsoleRenderer struct {
	out io.Writer
}

// NewConsoleRenderer builds a renderer targeting out.
func NewConsoleRenderer(out io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{out: out}
}

// Render prints the schedule summary tables. The wide weekly grid goes to
// the CSV and PDF exports; the console sticks to the digestible tables.
func (r *ConsoleRenderer) Render(input *models.RosterInput, sched *models.Schedule, scores []engine.TermScore) error {
	if sched.Suboptimal {
		fmt.Fprintln(r.out, "NOTE: time budget elapsed before optimality was proven; this schedule is feasible but possibly suboptimal.")
		fmt.Fprintln(r.out)
	}

	covered := 0
	for _, slot := range models.AllSlots() {
		if _, ok := sched.FrontDeskEmployee(slot); ok {
			covered++
		}
	}
	fmt.Fprintf(r.out, "Objective %.1f | front desk %d/%d slots covered | %.1f scheduled hours\n\n",
		sched.Objective, covered, models.NumDays*models.SlotsPerDay, sched.TotalHours())

	sections := []struct {
		title string
		data  export.Dataset
	}{
		{"Employees", EmployeeSummary(input, sched)},
		{"Departments", DepartmentSummary(input, sched)},
		{"Shifts", ShiftList(sched)},
		{"Objective breakdown", ScoreBreakdown(scores)},
	}
	for _, section := range sections {
		if err := r.table(section.title, section.data); err != nil {
			return err
		}
	}
	return nil
}

func (r *ConsoleRenderer) table(title string, data export.Dataset) error {
	fmt.Fprintf(r.out, "%s\n", title)
	w := tabwriter.NewWriter(r.out, 2, 4, 2, ' ', 0)
	printRow(w, data.Headers)
	for _, row := range data.Rows {
		printRow(w, row)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("render %s table: %w", title, err)
	}
	fmt.Fprintln(r.out)
	return nil
}

func printRow(w io.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, cell)
	}
	fmt.Fprintln(w)
}
