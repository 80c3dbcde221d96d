package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/qrforge/qrforge/internal/domain/service"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Render a CSV of payloads into a zip of QR code images",
	Long: `Batch reads rows of "format,data" from a CSV file (data fields are
pipe-delimited), renders one PNG per row and bundles them into a zip
archive. Rows that fail to build a payload are encoded as literal text;
rows that fail to render get a placeholder image. Without --csv two
sample rows are rendered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := mustLoadConfig()
		log := namedLogger("batch")

		csvPath, _ := cmd.Flags().GetString("csv")
		out, _ := cmd.Flags().GetString("out")
		workers, _ := cmd.Flags().GetInt("workers")
		if workers <= 0 {
			workers = cfg.Workers
		}

		style := applyStyleFlags(cmd, cfg.Render)
		svc := service.NewBatchService(log, style, workers)

		var rows []service.Row
		if csvPath != "" {
			var err error
			rows, err = svc.ReadCSV(csvPath)
			if err != nil {
				return fmt.Errorf("read %s: %w", csvPath, err)
			}
		}

		if err := svc.Generate(context.Background(), rows, out); err != nil {
			return err
		}
		fmt.Println("Wrote:", filepath.Clean(out))
		return nil
	},
}

func init() {
	batchCmd.Flags().String("csv", "", "input CSV path (format,data per row)")
	batchCmd.Flags().String("out", "qr_batch.zip", "output zip path")
	batchCmd.Flags().Int("workers", 0, "parallel renders (0 = configured default)")
	addStyleFlags(batchCmd)
}
