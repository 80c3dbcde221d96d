package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qrforge/qrforge/internal/adapters/config"
	"github.com/qrforge/qrforge/internal/adapters/logger"
	"github.com/qrforge/qrforge/pkg/colorx"
	qr "github.com/qrforge/qrforge/pkg/qrcode"
)

var rootCmd = &cobra.Command{
	Use:   "qrforge",
	Short: "qrforge - styled QR code generator (payloads, gradients, logos, batches)",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func mustLoadConfig() *config.Config {
	cfg := config.Get()
	fg, bg := colorx.ResolvePalette(cfg.Palette, cfg.Render.Foreground, cfg.Render.Background)
	cfg.Render.Foreground = fg
	cfg.Render.Background = bg
	return cfg
}

func namedLogger(name string) *logger.Logger {
	log, err := logger.Named(name)
	if err != nil {
		fmt.Println("failed to init logger:", err)
		os.Exit(1)
	}
	return log
}

// applyStyleFlags folds command-line overrides into the configured style.
// Only flags the user actually set are applied.
func applyStyleFlags(cmd *cobra.Command, cfg qr.Config) qr.Config {
	f := cmd.Flags()
	if f.Changed("size") {
		cfg.Size, _ = f.GetInt("size")
	}
	if f.Changed("level") {
		s, _ := f.GetString("level")
		cfg.Level = qr.Level(s)
	}
	if f.Changed("shape") {
		s, _ := f.GetString("shape")
		cfg.Shape = qr.Shape(s)
	}
	if f.Changed("eye-shape") {
		s, _ := f.GetString("eye-shape")
		cfg.EyeShape = qr.Shape(s)
	}
	if f.Changed("palette") {
		name, _ := f.GetString("palette")
		cfg.Foreground, cfg.Background = colorx.ResolvePalette(name, cfg.Foreground, cfg.Background)
	}
	if f.Changed("fg") {
		cfg.Foreground, _ = f.GetString("fg")
	}
	if f.Changed("bg") {
		cfg.Background, _ = f.GetString("bg")
	}
	if f.Changed("transparent") {
		cfg.Transparent, _ = f.GetBool("transparent")
	}
	if f.Changed("gradient-start") || f.Changed("gradient-end") {
		cfg.Mode = qr.ModeGradient
		if f.Changed("gradient-start") {
			cfg.Gradient.Start, _ = f.GetString("gradient-start")
		}
		if f.Changed("gradient-end") {
			cfg.Gradient.End, _ = f.GetString("gradient-end")
		}
		cfg.Gradient.Angle, _ = f.GetFloat64("gradient-angle")
		target, _ := f.GetString("gradient-target")
		cfg.Gradient.Target = qr.GradientTarget(target)
	}
	if f.Changed("border") {
		cfg.Border.Width, _ = f.GetInt("border")
	}
	if f.Changed("border-color") {
		cfg.Border.Color, _ = f.GetString("border-color")
	}
	if f.Changed("border-radius") {
		cfg.Border.CornerRadius, _ = f.GetInt("border-radius")
	}
	if f.Changed("qr-radius") {
		cfg.QRCornerRadius, _ = f.GetInt("qr-radius")
	}
	if f.Changed("logo") {
		path, _ := f.GetString("logo")
		scale, _ := f.GetFloat64("logo-scale")
		opacity, _ := f.GetFloat64("logo-opacity")
		clip, _ := f.GetString("logo-clip")
		cfg.Logo = &qr.Logo{
			Path:    path,
			Scale:   scale,
			Opacity: opacity,
			Clip:    qr.ClipShape(clip),
		}
	}
	if f.Changed("header") {
		text, _ := f.GetString("header")
		cfg.Header = captionFlag(cmd, text, 24, true)
	}
	if f.Changed("footer") {
		text, _ := f.GetString("footer")
		cfg.Footer = captionFlag(cmd, text, 18, false)
	}
	return cfg
}

func captionFlag(cmd *cobra.Command, text string, size int, bold bool) *qr.Caption {
	if text == "" {
		return nil
	}
	fontPath, _ := cmd.Flags().GetString("font")
	if s, _ := cmd.Flags().GetInt("font-size"); s > 0 {
		size = s
	}
	return &qr.Caption{
		Text:     text,
		FontPath: fontPath,
		FontSize: size,
		Bold:     bold,
		Align:    qr.AlignCenter,
	}
}

func addStyleFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("size", qr.DefaultSize, "output image size in pixels")
	f.String("level", "H", "error correction level (L, M, Q, H)")
	f.String("shape", "square", "module shape (square, gapped, circle, rounded, vertical, horizontal)")
	f.String("eye-shape", "", "finder pattern shape override")
	f.String("palette", "", "named color palette (see 'qrforge palettes')")
	f.String("fg", "", "foreground color (hex, rgb()/rgba() or named)")
	f.String("bg", "", "background color")
	f.Bool("transparent", false, "transparent background")
	f.String("gradient-start", "", "gradient start color (enables gradient mode)")
	f.String("gradient-end", "", "gradient end color")
	f.Float64("gradient-angle", 0, "gradient angle in degrees")
	f.String("gradient-target", "foreground", "gradient target (foreground, background)")
	f.Int("border", 0, "border width in pixels")
	f.String("border-color", "", "border color")
	f.Int("border-radius", 0, "outer corner radius in pixels")
	f.Int("qr-radius", 0, "corner radius of the QR area inside the border")
	f.String("logo", "", "path to a logo image to embed")
	f.Float64("logo-scale", 0.2, "logo size relative to the QR code")
	f.Float64("logo-opacity", 1.0, "logo opacity (0..1)")
	f.String("logo-clip", "none", "logo clip shape (none, circle, square)")
	f.String("header", "", "caption above the QR code")
	f.String("footer", "", "caption below the QR code")
	f.String("font", "", "TTF font path for captions")
	f.Int("font-size", 0, "caption font size in points")
}

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(payloadCmd)
	rootCmd.AddCommand(palettesCmd)
	rootCmd.AddCommand(versionCmd)
}
