package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/screenpos/display"
	"github.com/bnema/screenpos/internal/config"
)

// ScreenInfo represents the screen information output
type ScreenInfo struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Scale  float64 `json:"scale"`
}

var screenJSON bool

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Show screen resolution and scale",
	Long:  `Print the primary monitor's configured resolution and scale factor.`,
	RunE:  runScreen,
}

func init() {
	screenCmd.Flags().BoolVar(&screenJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(screenCmd)
}

func runScreen(cmd *cobra.Command, args []string) error {
	d, err := display.New(config.Get().DisplayConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize display backend: %w", err)
	}

	info, err := d.ScreenInfo()
	if err != nil {
		return err
	}

	if screenJSON {
		return json.NewEncoder(os.Stdout).Encode(ScreenInfo{
			Width:  info.Width,
			Height: info.Height,
			Scale:  info.Scale,
		})
	}

	fmt.Printf("%dx%d @ %.2fx scale\n", info.Width, info.Height, info.Scale)
	return nil
}
