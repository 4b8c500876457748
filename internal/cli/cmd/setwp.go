package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"wonderwall/internal/cli/cmd/utils"
	"wonderwall/internal/ipc"
)

func NewSetWallpaperCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setwp [wallpaper]",
		Short: "Immediately switch to the given wallpaper",
		Args:  cobra.ExactArgs(1),
		Run: func(c *cobra.Command, args []string) {
			body, err := ipc.SendRequest(socketPath(), ipc.VerbSetWallpaper, utils.CanonicalPath(args[0]))
			if err != nil {
				log.Fatalf("Failed to send 'setwp' command: %v", err)
			}
			log.Info(body)
		},
	}
}
