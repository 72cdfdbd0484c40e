package entities

// LocaleChange summarizes what reconciliation did to one locale.
type LocaleChange struct {
	Locale string
	// Added counts placeholders written for keys the locale lacked.
	Added int
	// Refreshed counts existing placeholders rewritten from the English text.
	Refreshed int
	// Adopted counts manual drafts promoted to final values.
	Adopted int
	// Removed counts leaf keys absent from the reference.
	Removed int
	Saved   bool
	// LoadIssue is the recoverable load error, if any, that made the locale
	// start from an empty tree.
	LoadIssue error
}

// Filled is the number of keys the fill pass wrote.
func (c LocaleChange) Filled() int {
	return c.Added + c.Refreshed + c.Adopted
}

// Changed reports whether the locale's tree differs from what was loaded.
func (c LocaleChange) Changed() bool {
	return c.Filled() > 0 || c.Removed > 0
}

// ReconcileReport is the outcome of one reconcile run.
type ReconcileReport struct {
	Reference string
	DryRun    bool
	Locales   []LocaleChange
}

// TemplateIssue flags a message that does not compile as a message template.
type TemplateIssue struct {
	Key string
	Err string
}

// LocaleStats are the coverage figures of one locale against the reference.
type LocaleStats struct {
	Locale     string
	Total      int
	Translated int
	Missing    []string
	Extra      []string
	Pending    []string
	Coverage   int

	LoadIssue      error
	TemplateIssues []TemplateIssue
}

// HasErrors reports whether the locale fails validation. Extra and pending
// keys are warnings only.
func (s LocaleStats) HasErrors() bool {
	return len(s.Missing) > 0
}

// ValidationReport is the outcome of one validate run, locales in sorted order.
type ValidationReport struct {
	Reference string
	Locales   []LocaleStats
}

// Failed reports whether any locale is missing a reference key.
func (r ValidationReport) Failed() bool {
	for _, s := range r.Locales {
		if s.HasErrors() {
			return true
		}
	}
	return false
}
