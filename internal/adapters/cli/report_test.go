package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"localesync/internal/domain"
	"localesync/internal/domain/entities"
)

func keys(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s.%d", prefix, i)
	}
	return out
}

func TestPrintLocaleDetail_Truncates(t *testing.T) {
	var buf bytes.Buffer
	PrintLocaleDetail(&buf, entities.LocaleStats{
		Locale:   "fr",
		Missing:  keys("missing", 12),
		Extra:    keys("extra", 5),
		Pending:  keys("pending", 7),
		Coverage: 42,
	}, domain.DefaultSettings())
	out := buf.String()

	assert.Contains(t, out, "Checking fr...\n")
	assert.Contains(t, out, "Missing 12 keys:\n")
	assert.Contains(t, out, "    - missing.9\n")
	assert.NotContains(t, out, "missing.10")
	assert.Contains(t, out, "... and 2 more\n")

	assert.Contains(t, out, "Extra 5 keys:\n")
	assert.Contains(t, out, "    - extra.4\n")

	assert.Contains(t, out, "7 TODO_TRANSLATE strings:\n")
	assert.NotContains(t, out, "pending.5")

	assert.Equal(t, 2, strings.Count(out, "... and 2 more"), "missing and pending both overflow by two")
	assert.Contains(t, out, "Coverage: 42%\n")
}

func TestPrintLocaleDetail_Clean(t *testing.T) {
	var buf bytes.Buffer
	PrintLocaleDetail(&buf, entities.LocaleStats{Locale: "en", Total: 3, Translated: 3, Coverage: 100}, domain.DefaultSettings())
	assert.Equal(t, "Checking en...\nCoverage: 100%\n\n", buf.String())
}

func TestRenderSummaryTable(t *testing.T) {
	out := RenderSummaryTable([]entities.LocaleStats{
		{Locale: "en", Total: 10, Translated: 10, Coverage: 100},
		{Locale: "fr", Total: 10, Translated: 8, Missing: []string{"a"}, Pending: []string{"b"}, Coverage: 80},
	})

	for _, h := range summaryHeaders {
		assert.Contains(t, out, h)
	}
	lines := strings.Split(out, "\n")
	var frRow string
	for _, l := range lines {
		if strings.Contains(l, " fr ") {
			frRow = l
		}
	}
	if assert.NotEmpty(t, frRow, "no row for fr in:\n%s", out) {
		assert.Contains(t, frRow, "80%")
		assert.Regexp(t, `\b8\b`, frRow)
	}
	assert.True(t, strings.HasPrefix(out, "┌"), "normal border expected:\n%s", out)
}

func TestPrintValidationReport_Verdict(t *testing.T) {
	var buf bytes.Buffer
	PrintValidationReport(&buf, &entities.ValidationReport{Locales: []entities.LocaleStats{
		{Locale: "fr", Total: 1, Missing: []string{"a"}},
	}}, domain.DefaultSettings())
	assert.Contains(t, buf.String(), "Translation Coverage Summary:")
	assert.Contains(t, buf.String(), "Validation failed!")

	buf.Reset()
	PrintValidationReport(&buf, &entities.ValidationReport{Locales: []entities.LocaleStats{
		{Locale: "fr", Total: 1, Translated: 1, Coverage: 100},
	}}, domain.DefaultSettings())
	assert.Contains(t, buf.String(), "All translations are valid!")
}

func TestPrintReconcileReport(t *testing.T) {
	var buf bytes.Buffer
	PrintReconcileReport(&buf, &entities.ReconcileReport{Locales: []entities.LocaleChange{
		{Locale: "de"},
		{Locale: "fr", Added: 2, Adopted: 1, Removed: 3, Saved: true},
		{Locale: "it", Added: 1, LoadIssue: fmt.Errorf("it: %w", domain.ErrLocaleFileMalformed)},
		{Locale: "pt", Added: 1, LoadIssue: fmt.Errorf("pt: %w", domain.ErrLocaleFileMissing)},
	}})
	out := buf.String()

	assert.Contains(t, out, "No changes needed for de\n")
	assert.Contains(t, out, "Removed 3 extra keys\n")
	assert.Contains(t, out, "Updated fr: +3 translations, -3 extra keys\n")
	assert.Contains(t, out, "it could not be parsed")
	assert.Contains(t, out, "Updated pt: +1 translations, -0 extra keys\n")
	assert.NotContains(t, out, "does not exist", "a missing file is only logged")
	assert.NotContains(t, out, "Warning")
	assert.True(t, strings.HasSuffix(out, "Translation fix complete!\n"))
}
