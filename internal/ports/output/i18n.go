package output

import "localesync/internal/domain/entities"

// TemplateChecker reports messages a localization runtime would refuse.
type TemplateChecker interface {
	// CheckTemplates loads every string leaf of tree as a message of locale
	// and returns one issue per message that fails to render.
	CheckTemplates(locale string, tree *entities.Tree) []entities.TemplateIssue
}
