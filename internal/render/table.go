// Package render turns a metrics report into fixed-width text tables. It is
// presentation glue only; all numbers come from the metrics core unchanged.
package render

import (
	"fmt"
	"strings"

	"github.com/tabqa/tabqa/internal/metrics"
)

// AccuracyTable renders the per-column accuracy view plus the overall block.
func AccuracyTable(rep *metrics.FamilyReport) string {
	var b strings.Builder

	b.WriteString("\nAccuracy Summary per column:\n\n")
	b.WriteString(fmt.Sprintf("%-24s%10s%10s%10s%10s%13s\n",
		"Column", "Missing", "Outliers", "DriftFail", "Correct", "Accuracy(%)"))
	for _, c := range rep.Columns {
		b.WriteString(fmt.Sprintf("%-24s%10d%10d%10d%10d%13.2f\n",
			truncate(c.Column, 23), c.Missing, c.Outliers, c.DriftFail, c.Correct, c.Pct))
	}

	o := rep.Overall
	b.WriteString("\nOverall summary:\n\n")
	b.WriteString(fmt.Sprintf("Total cells      : %d\n", o.TotalCells))
	b.WriteString(fmt.Sprintf("Missing cells    : %d\n", o.MissingCells))
	b.WriteString(fmt.Sprintf("Outlier cells    : %d\n", o.OutlierCells))
	b.WriteString(fmt.Sprintf("Drift-fail cells : %d\n", o.DriftFailCells))
	b.WriteString(fmt.Sprintf("Correct cells    : %d\n", o.CorrectCells))
	b.WriteString(fmt.Sprintf("Overall Accuracy (%%): %.2f\n", o.Pct))
	return b.String()
}

// ConsistencyTable renders the per-column consistency view plus the overall
// block.
func ConsistencyTable(rep *metrics.FamilyReport) string {
	var b strings.Builder

	b.WriteString("\nConsistency Summary per column:\n\n")
	b.WriteString(fmt.Sprintf("%-24s%-10s%15s%17s\n",
		"Column", "Type", "Inconsistent", "Consistency(%)"))
	for _, c := range rep.Columns {
		b.WriteString(fmt.Sprintf("%-24s%-10s%15d%17.2f\n",
			truncate(c.Column, 23), string(c.Type), c.Inconsistent, c.Pct))
	}

	o := rep.Overall
	b.WriteString("\nOverall consistency across all cells:\n\n")
	b.WriteString(fmt.Sprintf("Total cells        : %d\n", o.TotalCells))
	b.WriteString(fmt.Sprintf("Inconsistent cells : %d\n", o.InconsistentCells))
	b.WriteString(fmt.Sprintf("Consistency (%%): %.2f\n", o.Pct))
	return b.String()
}

// CompletenessTable renders the per-column completeness view with the
// overall row appended, pandas-summary style.
func CompletenessTable(rep *metrics.FamilyReport) string {
	var b strings.Builder

	b.WriteString("\nCompleteness Summary:\n\n")
	b.WriteString(fmt.Sprintf("%-24s%10s%17s\n", "Column", "Missing", "Completeness(%)"))
	for _, c := range rep.Columns {
		b.WriteString(fmt.Sprintf("%-24s%10d%17.2f\n",
			truncate(c.Column, 23), c.Missing, c.Pct))
	}
	b.WriteString(fmt.Sprintf("%-24s%10d%17.2f\n",
		"Overall", rep.Overall.MissingCells, rep.Overall.Pct))
	return b.String()
}

// Table renders the view matching the report's family.
func Table(rep *metrics.FamilyReport) string {
	switch rep.Family {
	case "completeness":
		return CompletenessTable(rep)
	case "consistency":
		return ConsistencyTable(rep)
	default:
		return AccuracyTable(rep)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
