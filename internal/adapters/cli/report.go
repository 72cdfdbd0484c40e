package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"localesync/internal/domain"
	"localesync/internal/domain/entities"
	"localesync/pkg/textutil"
)

// Detail list limits.
const (
	maxMissingShown = 10
	maxExtraShown   = 5
	maxPendingShown = 5
)

// PrintReconcileReport writes the per-locale outcome of a fix run.
func PrintReconcileReport(w io.Writer, r *entities.ReconcileReport) {
	if r.DryRun {
		fmt.Fprint(w, "Fixing translations (dry run, nothing is written)...\n\n")
	} else {
		fmt.Fprint(w, "Fixing translations...\n\n")
	}

	for _, c := range r.Locales {
		fmt.Fprintf(w, "Processing %s...\n", c.Locale)
		printLoadIssue(w, c.Locale, c.LoadIssue)
		if c.Removed > 0 {
			fmt.Fprintf(w, "Removed %d extra keys\n", c.Removed)
		}
		if c.Adopted > 0 {
			fmt.Fprintf(w, "Adopted %d manual translations\n", c.Adopted)
		}
		switch {
		case !c.Changed():
			fmt.Fprintf(w, "No changes needed for %s\n", c.Locale)
		case r.DryRun:
			fmt.Fprintf(w, "Would update %s: +%d translations, -%d extra keys\n", c.Locale, c.Filled(), c.Removed)
		default:
			fmt.Fprintf(w, "Updated %s: +%d translations, -%d extra keys\n", c.Locale, c.Filled(), c.Removed)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "Translation fix complete!")
}

// PrintValidationReport writes one detail block per locale, the summary
// table and the final verdict.
func PrintValidationReport(w io.Writer, r *entities.ValidationReport, settings domain.Settings) {
	fmt.Fprint(w, "Validating translations...\n\n")
	for _, s := range r.Locales {
		PrintLocaleDetail(w, s, settings)
	}

	fmt.Fprintln(w, "\nTranslation Coverage Summary:")
	fmt.Fprintln(w, RenderSummaryTable(r.Locales))

	if r.Failed() {
		fmt.Fprintln(w, "\n❌ Validation failed! Please fix the missing translations.")
		return
	}
	fmt.Fprintln(w, "\n✅ All translations are valid!")
}

// PrintLocaleDetail writes the truncated key lists of one locale.
func PrintLocaleDetail(w io.Writer, s entities.LocaleStats, settings domain.Settings) {
	fmt.Fprintf(w, "Checking %s...\n", s.Locale)
	printLoadIssue(w, s.Locale, s.LoadIssue)

	if len(s.Missing) > 0 {
		fmt.Fprintf(w, "Missing %d keys:\n", len(s.Missing))
		printKeys(w, s.Missing, maxMissingShown)
	}
	if len(s.Extra) > 0 {
		fmt.Fprintf(w, "Extra %d keys:\n", len(s.Extra))
		printKeys(w, s.Extra, maxExtraShown)
	}
	if len(s.Pending) > 0 {
		fmt.Fprintf(w, "%d %s strings:\n", len(s.Pending), markerLabel(settings))
		printKeys(w, s.Pending, maxPendingShown)
	}
	if len(s.TemplateIssues) > 0 {
		fmt.Fprintf(w, "%d template issues:\n", len(s.TemplateIssues))
		for _, issue := range s.TemplateIssues {
			if issue.Key == "" {
				fmt.Fprintf(w, "    - %s\n", issue.Err)
				continue
			}
			fmt.Fprintf(w, "    - %s: %s\n", issue.Key, issue.Err)
		}
	}
	fmt.Fprintf(w, "Coverage: %d%%\n\n", s.Coverage)
}

func printKeys(w io.Writer, keys []string, limit int) {
	shown, rest := textutil.Head(keys, limit)
	for _, k := range shown {
		fmt.Fprintf(w, "    - %s\n", k)
	}
	if rest > 0 {
		fmt.Fprintf(w, "... and %d more\n", rest)
	}
}

// printLoadIssue surfaces a malformed file in the report. A missing file is
// only logged.
func printLoadIssue(w io.Writer, locale string, err error) {
	if errors.Is(err, domain.ErrLocaleFileMalformed) {
		fmt.Fprintf(w, "⚠️  %s could not be parsed and was treated as empty: %v\n", locale, err)
	}
}

func markerLabel(settings domain.Settings) string {
	return strings.TrimRight(settings.Marker, ": ")
}

var summaryHeaders = []string{"Locale", "Total", "Translated", "Missing", "Extra", "TODO", "Coverage"}

// RenderSummaryTable renders one row per locale. It only formats; every
// figure comes from the stats.
func RenderSummaryTable(stats []entities.LocaleStats) string {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Locale,
			strconv.Itoa(s.Total),
			strconv.Itoa(s.Translated),
			strconv.Itoa(len(s.Missing)),
			strconv.Itoa(len(s.Extra)),
			strconv.Itoa(len(s.Pending)),
			strconv.Itoa(s.Coverage) + "%",
		})
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(summaryHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return cell
			}
			return cell.Align(lipgloss.Right)
		}).
		String()
}
