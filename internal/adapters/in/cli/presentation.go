package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/platelens/platelens/internal/adapters/in/cli/ui/components"
	"github.com/platelens/platelens/internal/adapters/in/cli/ui/styles"
	"github.com/platelens/platelens/internal/domain"
)

var cliWriteLine = func(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

func cliRenderTitle(msg string) string {
	return styles.Theme.Title.Render(msg)
}

func cliRenderMuted(msg string) string {
	return styles.Theme.Muted.Render(msg)
}

func cliRenderMeta(label, value string) string {
	return styles.Theme.Bold.Render(label) + " " + styles.Theme.Muted.Render(value)
}

func cliRenderError(msg string) string {
	return styles.RenderError(msg)
}

func cliRenderWarning(msg string) string {
	return styles.RenderWarning(msg)
}

// reportColumns is the layout of the items table.
var reportColumns = []components.TableColumn{
	{Title: "Food", Width: 28},
	{Title: "Serving", Width: 18},
	{Title: "kcal", Width: 8, AlignRight: true},
	{Title: "Protein g", Width: 11, AlignRight: true},
	{Title: "Carbs g", Width: 9, AlignRight: true},
	{Title: "Fat g", Width: 8, AlignRight: true},
}

// reportRows builds the table rows: one per item, then the totals row.
func reportRows(summary *domain.NutritionSummary) [][]string {
	rows := make([][]string, 0, len(summary.Items)+1)
	for _, item := range summary.Items {
		serving := item.ServingSize
		if serving == "" {
			serving = "-"
		}
		rows = append(rows, []string{
			item.Name,
			serving,
			formatAmount(item.Calories),
			formatAmount(item.ProteinG),
			formatAmount(item.CarbsG),
			formatAmount(item.FatG),
		})
	}
	rows = append(rows, []string{
		"Total",
		"",
		formatAmount(summary.Totals.Calories),
		formatAmount(summary.Totals.ProteinG),
		formatAmount(summary.Totals.CarbsG),
		formatAmount(summary.Totals.FatG),
	})
	return rows
}

// formatAmount prints at most one decimal and drops a trailing ".0".
func formatAmount(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

// renderAnalysis writes a human-readable report for a.
func renderAnalysis(w io.Writer, a *domain.Analysis) error {
	if err := cliWriteLine(w, cliRenderTitle("Nutrition report")); err != nil {
		return err
	}

	if a.Report.IsNotFood() {
		return cliWriteLine(w, cliRenderWarning("The image does not appear to contain food."))
	}

	summary, err := a.Report.Summary()
	if err != nil {
		// Valid JSON that is not an object: show it as-is.
		if err := cliWriteLine(w, cliRenderWarning("Unexpected report shape, showing raw JSON:")); err != nil {
			return err
		}
		return cliWriteLine(w, string(a.Report.Raw))
	}

	if len(summary.Items) == 0 {
		if err := cliWriteLine(w, cliRenderMuted("No food items identified.")); err != nil {
			return err
		}
	} else {
		table := components.NewTable(
			components.WithColumns(reportColumns),
			components.WithRows(reportRows(summary)),
			components.WithTotalsRow(),
		)
		if err := cliWriteLine(w, table.Render()); err != nil {
			return err
		}
	}

	tags := make([]string, len(summary.HealthTags))
	for i, t := range summary.HealthTags {
		tags[i] = string(t)
	}
	if err := cliWriteLine(w, styles.Theme.Bold.Render("Tags:")+" "+styles.RenderTags(tags)); err != nil {
		return err
	}

	meta := fmt.Sprintf("%s, %s, %dms", a.Model, a.Image.MIMEType, a.Duration.Milliseconds())
	return cliWriteLine(w, cliRenderMeta("Model:", meta))
}
