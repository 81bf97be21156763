package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"EmoGoBackend/models"
	"EmoGoBackend/services"

	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	var sample int64

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print record counts and sample documents for every collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), flags.configDir)
			if err != nil {
				return err
			}
			defer a.Close(cmd.Context())

			return analyze(cmd, a.records, sample)
		},
	}

	cmd.Flags().Int64Var(&sample, "sample", 3, "number of sample documents per collection")
	return cmd
}

func analyze(cmd *cobra.Command, records *services.RecordService, sample int64) error {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "EmoGo data report")

	for _, schema := range []models.SchemaVersion{models.SchemaFrontend, models.SchemaLegacy} {
		fmt.Fprintf(w, "\n[%s]\n", schema)
		kinds := models.FrontendKinds
		if schema == models.SchemaLegacy {
			kinds = models.LegacyKinds
		}
		for _, kind := range kinds {
			if err := analyzeKind(cmd, w, records, kind, sample); err != nil {
				return err
			}
		}
	}
	return nil
}

func analyzeKind(cmd *cobra.Command, w io.Writer, records *services.RecordService, kind models.RecordKind, sample int64) error {
	limit := sample
	if limit <= 0 {
		// 仅统计数量
		limit = 1
	}
	docs, total, err := records.List(cmd.Context(), kind, services.FindOptions{Limit: limit})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%-28s collection=%-16s count=%d\n", kind.Label(), kind.Collection(), total)
	if sample <= 0 {
		return nil
	}
	for _, doc := range docs {
		b, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode %s sample: %w", kind, err)
		}
		fmt.Fprintf(w, "  %s\n", b)
	}
	return nil
}
