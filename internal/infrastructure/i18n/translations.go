package i18n

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"localesync/internal/domain/entities"
	"localesync/internal/domain/keypath"
	"localesync/internal/ports/output"
)

// Ensure BundleChecker implements the output.TemplateChecker port.
var _ output.TemplateChecker = (*BundleChecker)(nil)

// BundleChecker loads locale trees into a go-i18n Bundle and renders every
// message once, the way an application using go-i18n would at runtime.
type BundleChecker struct {
	defaultLanguage language.Tag
	logger          *zap.Logger
}

// NewBundleChecker builds a checker whose bundles default to the given
// reference locale (e.g. "en").
func NewBundleChecker(referenceLocale string, logger *zap.Logger) *BundleChecker {
	tag, err := language.Parse(referenceLocale)
	if err != nil {
		tag = language.English
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BundleChecker{
		defaultLanguage: tag,
		logger:          logger,
	}
}

// CheckTemplates returns one issue per string leaf that go-i18n cannot render.
// Empty strings are skipped; go-i18n treats them as absent messages.
func (c *BundleChecker) CheckTemplates(locale string, tree *entities.Tree) []entities.TemplateIssue {
	tag, err := language.Parse(locale)
	if err != nil {
		return []entities.TemplateIssue{{Err: "invalid language tag: " + err.Error()}}
	}

	var ids []string
	var messages []*i18n.Message
	for _, path := range keypath.Flatten(tree) {
		n, _ := keypath.Get(tree, path)
		text, ok := n.StringValue()
		if !ok || text == "" {
			continue
		}
		ids = append(ids, path)
		messages = append(messages, &i18n.Message{ID: path, Other: text})
	}

	bundle := i18n.NewBundle(c.defaultLanguage)
	if err := bundle.AddMessages(tag, messages...); err != nil {
		return []entities.TemplateIssue{{Err: err.Error()}}
	}

	localizer := i18n.NewLocalizer(bundle, tag.String())
	var issues []entities.TemplateIssue
	for _, id := range ids {
		if _, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id}); err != nil {
			c.logger.Debug("i18n: localize failed", zap.String("locale", locale), zap.String("key", id), zap.Error(err))
			issues = append(issues, entities.TemplateIssue{Key: id, Err: err.Error()})
		}
	}
	return issues
}
