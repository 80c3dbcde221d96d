package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qrforge/qrforge/internal/adapters/config"
	"github.com/qrforge/qrforge/internal/domain/service"
)

var renderCmd = &cobra.Command{
	Use:   "render [field ...]",
	Short: "Render a styled QR code to a PNG file",
	Long: `Render builds a payload from the given fields and writes a styled QR
code PNG. The --format flag selects the payload builder; with the default
"text" format the fields are joined into literal text.

Examples:
  qrforge render "Hello, world" --out hello.png
  qrforge render --format wifi MyNet wpa secret123 --out wifi.png
  qrforge render --format url example.com --palette "Brand Blue" --shape rounded`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := mustLoadConfig()
		log := namedLogger("render")

		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = "qr.png"
		}

		fields := args
		if format == "" || strings.EqualFold(format, "text") {
			fields = []string{strings.Join(args, " ")}
		}

		style := applyStyleFlags(cmd, cfg.Render)
		svc := service.NewRenderService(log, style)
		data, err := svc.Render(context.Background(), format, fields, out)
		if err != nil {
			return err
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			if err := config.Save(); err != nil {
				return err
			}
		}

		fmt.Println("Payload:", data)
		fmt.Println("Wrote:", filepath.Clean(out))
		return nil
	},
}

func init() {
	renderCmd.Flags().String("format", "text", "payload format (text, url, wifi, vcard, mecard, mailto, tel, sms, geo, event, payment, applink)")
	renderCmd.Flags().String("out", "qr.png", "output PNG path")
	renderCmd.Flags().Bool("save", false, "persist settings to settings.yaml")
	addStyleFlags(renderCmd)
}
