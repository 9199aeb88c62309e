package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/screenpos/display"
	"github.com/bnema/screenpos/internal/config"
)

// CursorInfo represents the cursor position output
type CursorInfo struct {
	X int `json:"x"`
	Y int `json:"y"`
}

var (
	cursorJSON    bool
	cursorRefresh bool
)

var cursorCmd = &cobra.Command{
	Use:   "cursor",
	Short: "Show the cursor position",
	Long:  `Print the current cursor position in physical pixels.`,
	RunE:  runCursor,
}

func init() {
	cursorCmd.Flags().BoolVar(&cursorJSON, "json", false, "Output in JSON format")
	cursorCmd.Flags().BoolVar(&cursorRefresh, "refresh", false, "Refresh cached screen info before querying")
	rootCmd.AddCommand(cursorCmd)
}

func runCursor(cmd *cobra.Command, args []string) error {
	d, err := display.New(config.Get().DisplayConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize display backend: %w", err)
	}

	if cursorRefresh {
		if _, err := display.MaybeRefreshScreenInfo(d); err != nil {
			return err
		}
	}

	pos, err := d.CursorPosition()
	if err != nil {
		return err
	}

	if cursorJSON {
		return json.NewEncoder(os.Stdout).Encode(CursorInfo{X: pos.X, Y: pos.Y})
	}

	fmt.Printf("%d, %d\n", pos.X, pos.Y)
	return nil
}
