package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"egress/pkg/analyze"
	"egress/pkg/model"
	"egress/pkg/report"
)

func checkCommand() *cobra.Command {
	var (
		modelPath string
		outPath   string
		quick     bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Analyze a model snapshot and report compliance per category",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := model.LoadSnapshotFile(modelPath)
			if err != nil {
				return err
			}

			res, err := analyze.Run(snap, analyze.Options{
				Quick:  quick,
				Logger: slog.Default(),
			})
			if err != nil {
				return err
			}

			for _, sum := range res.Categories() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s passing=%d failing=%d\n",
					sum.Category, sum.Passing, sum.Failing)
				for _, fail := range sum.Failures {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s [%s]: %s\n",
						fail.Name, fail.Element.ID, fail.Reason)
				}
			}

			if outPath != "" {
				if err := report.WriteFile(outPath, res); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "report written: %s\n", outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "", "path to the YAML model snapshot")
	cmd.Flags().StringVar(&outPath, "out", "", "path of the .xlsx report to write (optional)")
	cmd.Flags().BoolVar(&quick, "quick", false, "skip geometry extraction for dimensions; rely on declared properties")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}
