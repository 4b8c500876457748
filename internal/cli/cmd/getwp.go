package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"wonderwall/internal/ipc"
)

func NewGetWallpaperCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "getwp",
		Short: "Print the wallpaper currently on display",
		Run: func(c *cobra.Command, args []string) {
			body, err := ipc.SendRequest(socketPath(), ipc.VerbGetWallpaper, "")
			if err != nil {
				log.Fatalf("Failed to send 'getwp' command: %v", err)
			}
			log.Info(body)
		},
	}
}
