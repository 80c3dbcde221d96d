package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qrforge/qrforge/internal/domain/service"
)

var payloadCmd = &cobra.Command{
	Use:   "payload [field ...]",
	Short: "Build and print a payload string without rendering",
	Long: `Payload runs the selected builder and prints the resulting string.
Useful for checking what a wifi, vcard or event row will encode before
rendering it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		fields := args
		if format == "" || strings.EqualFold(format, "text") {
			fields = []string{strings.Join(args, " ")}
		}
		data, err := service.BuildPayload(format, fields)
		if err != nil {
			return err
		}
		fmt.Println(data)
		return nil
	},
}

func init() {
	payloadCmd.Flags().String("format", "text", "payload format (text, url, wifi, vcard, mecard, mailto, tel, sms, geo, event, payment, applink)")
}
