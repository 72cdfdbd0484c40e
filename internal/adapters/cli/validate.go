package cli

import (
	"github.com/spf13/cobra"

	"localesync/internal/domain"
	"localesync/internal/ports/input"
)

func newValidateCommand(a *app) *cobra.Command {
	var opts input.ValidateOptions

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Report missing, extra and untranslated keys per locale",
		Long: `validate compares every locale with the reference and prints a coverage table.
It exits with status 1 when any locale is missing a reference key; extra keys and
pending TODO_TRANSLATE placeholders are reported as warnings only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var uc input.ValidateUseCase = a.validator()
			report, err := uc.Validate(cmd.Context(), opts)
			if err != nil {
				return err
			}
			PrintValidationReport(cmd.OutOrStdout(), report, a.settings)
			if report.Failed() {
				return domain.ErrValidationFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "abort on a malformed locale file instead of treating it as empty")
	cmd.Flags().BoolVar(&opts.CheckTemplates, "check-templates", false, "also load each locale into go-i18n and report messages that fail to render")
	return cmd
}
