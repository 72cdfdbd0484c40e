package cli

import (
	"github.com/spf13/cobra"

	"localesync/internal/ports/input"
)

func newFixCommand(a *app) *cobra.Command {
	var opts input.ReconcileOptions

	cmd := &cobra.Command{
		Use:     "fix",
		Aliases: []string{"reconcile"},
		Short:   "Add missing keys as placeholders and remove keys absent from the reference",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var uc input.ReconcileUseCase = a.reconciler()
			report, err := uc.Reconcile(cmd.Context(), opts)
			if err != nil {
				return err
			}
			PrintReconcileReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "report changes without writing files")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "abort on a malformed locale file instead of treating it as empty")
	return cmd
}
