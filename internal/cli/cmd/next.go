package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wonderwall/internal/ipc"
)

// socketPath resolves the control socket for client commands.
func socketPath() string {
	return viper.GetString("socket")
}

func NewNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Switch to the next wallpaper",
		Run: func(c *cobra.Command, args []string) {
			body, err := ipc.SendRequest(socketPath(), ipc.VerbNext, "")
			if err != nil {
				log.Fatalf("Failed to send 'next' command: %v", err)
			}
			log.Info(body)
		},
	}
}
