package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/screenpos/internal/config"
	"github.com/bnema/screenpos/internal/logger"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"

	configPath string

	rootCmd = &cobra.Command{
		Use:   "screenpos",
		Short: "Screenpos - cursor position and screen geometry",
		Long: `Screenpos reports the mouse cursor position and screen resolution in
physical pixels, independent of the display server in use. On Hyprland it
talks to the compositor's control socket directly; on X11, Windows and macOS
it queries the native windowing API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				config.SetConfigPath(configPath)
			}
			if err := config.Init(); err != nil {
				return err
			}
			if level := config.Get().Logging.LogLevel; level != "" {
				logger.SetLevel(level)
			}
			return nil
		},
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
}
