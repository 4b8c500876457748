package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"wonderwall/internal/ipc"
)

func NewGetDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "getdir",
		Short: "Print the directory the daemon is cycling through",
		Run: func(c *cobra.Command, args []string) {
			body, err := ipc.SendRequest(socketPath(), ipc.VerbGetDir, "")
			if err != nil {
				log.Fatalf("Failed to send 'getdir' command: %v", err)
			}
			log.Info(body)
		},
	}
}
