package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var dataType, format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored records to a JSON or CSV file",
		Example: "  emogo export --data-type all\n" +
			"  emogo export --data-type emotions --format csv --out emotions.csv\n" +
			"  emogo export --data-type frontend --out -",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), flags.configDir)
			if err != nil {
				return err
			}
			defer a.Close(cmd.Context())

			result, err := a.exporter.Export(cmd.Context(), dataType, format)
			if err != nil {
				return err
			}

			if out == "-" {
				_, err = cmd.OutOrStdout().Write(result.Body)
				return err
			}
			if out == "" {
				out = result.Filename
			}
			if err := os.WriteFile(out, result.Body, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "exported %d records to %s\n", result.Records, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataType, "data-type", "", "record kind, frontend, legacy or all")
	cmd.Flags().StringVar(&format, "format", "json", "json or csv")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default emogo_export_<data-type>.<format>, - for stdout)")
	_ = cmd.MarkFlagRequired("data-type")
	return cmd
}
