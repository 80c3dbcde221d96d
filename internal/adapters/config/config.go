package config

import (
	"errors"

	"github.com/spf13/viper"

	"github.com/qrforge/qrforge/internal/adapters/logger"
	qr "github.com/qrforge/qrforge/pkg/qrcode"
)

// Config bundles the resolved style defaults and runtime settings for one
// invocation.
type Config struct {
	Render  qr.Config
	Palette string
	Workers int
}

func initConfig() {
	viper.SetConfigName("settings")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing settings file just means defaults; anything else is fatal.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(err)
		}
	}
}

func setDefaults() {
	viper.SetDefault("settings.debug", false)
	viper.SetDefault("settings.log-to-file", false)
	viper.SetDefault("settings.logs-dir", "logs")

	viper.SetDefault("render.size", qr.DefaultSize)
	viper.SetDefault("render.level", "H")
	viper.SetDefault("render.shape", "square")
	viper.SetDefault("render.palette", "Custom")
	viper.SetDefault("render.foreground", "#000000")
	viper.SetDefault("render.background", "#FFFFFF")
	viper.SetDefault("render.transparent", false)
	viper.SetDefault("render.qr-corner-radius", 0)

	viper.SetDefault("render.gradient.enabled", false)
	viper.SetDefault("render.gradient.start", "#000000")
	viper.SetDefault("render.gradient.end", "#FFFFFF")
	viper.SetDefault("render.gradient.angle", 90.0)
	viper.SetDefault("render.gradient.target", "foreground")

	viper.SetDefault("render.border.width", 0)
	viper.SetDefault("render.border.color", "")
	viper.SetDefault("render.border.corner-radius", 0)

	viper.SetDefault("render.logo.path", "")
	viper.SetDefault("render.logo.scale", 0.2)
	viper.SetDefault("render.logo.opacity", 1.0)
	viper.SetDefault("render.logo.clip", "none")

	viper.SetDefault("render.header.text", "")
	viper.SetDefault("render.header.font-path", "")
	viper.SetDefault("render.header.font-size", 24)
	viper.SetDefault("render.header.bold", true)
	viper.SetDefault("render.header.align", "center")

	viper.SetDefault("render.footer.text", "")
	viper.SetDefault("render.footer.font-path", "")
	viper.SetDefault("render.footer.font-size", 18)
	viper.SetDefault("render.footer.bold", false)
	viper.SetDefault("render.footer.align", "center")

	viper.SetDefault("batch.workers", 4)
}

// Get loads settings.yaml (if present), initializes the logger and returns
// the merged configuration.
func Get() *Config {
	initConfig()

	err := logger.Init(logger.Config{
		Debug:     viper.GetBool("settings.debug"),
		LogToFile: viper.GetBool("settings.log-to-file"),
		LogsDir:   viper.GetString("settings.logs-dir"),
	})
	if err != nil {
		panic(err)
	}

	return &Config{
		Render:  renderConfig(),
		Palette: viper.GetString("render.palette"),
		Workers: viper.GetInt("batch.workers"),
	}
}

func renderConfig() qr.Config {
	cfg := qr.Config{
		Size:           viper.GetInt("render.size"),
		Level:          qr.Level(viper.GetString("render.level")),
		Shape:          qr.Shape(viper.GetString("render.shape")),
		Foreground:     viper.GetString("render.foreground"),
		Background:     viper.GetString("render.background"),
		Transparent:    viper.GetBool("render.transparent"),
		QRCornerRadius: viper.GetInt("render.qr-corner-radius"),
		Mode:           qr.ModeSolid,
		Border: qr.Border{
			Width:        viper.GetInt("render.border.width"),
			Color:        viper.GetString("render.border.color"),
			CornerRadius: viper.GetInt("render.border.corner-radius"),
		},
	}

	if viper.GetBool("render.gradient.enabled") {
		cfg.Mode = qr.ModeGradient
		cfg.Gradient = qr.Gradient{
			Start:  viper.GetString("render.gradient.start"),
			End:    viper.GetString("render.gradient.end"),
			Angle:  viper.GetFloat64("render.gradient.angle"),
			Target: qr.GradientTarget(viper.GetString("render.gradient.target")),
		}
	}

	if path := viper.GetString("render.logo.path"); path != "" {
		cfg.Logo = &qr.Logo{
			Path:    path,
			Scale:   viper.GetFloat64("render.logo.scale"),
			Opacity: viper.GetFloat64("render.logo.opacity"),
			Clip:    qr.ClipShape(viper.GetString("render.logo.clip")),
		}
	}

	if text := viper.GetString("render.header.text"); text != "" {
		cfg.Header = caption("render.header")
	}
	if text := viper.GetString("render.footer.text"); text != "" {
		cfg.Footer = caption("render.footer")
	}
	return cfg
}

func caption(key string) *qr.Caption {
	return &qr.Caption{
		Text:     viper.GetString(key + ".text"),
		FontPath: viper.GetString(key + ".font-path"),
		FontSize: viper.GetInt(key + ".font-size"),
		Bold:     viper.GetBool(key + ".bold"),
		Align:    qr.Align(viper.GetString(key + ".align")),
	}
}

// Save persists the current settings to settings.yaml in the working
// directory.
func Save() error {
	return viper.WriteConfigAs("settings.yaml")
}
