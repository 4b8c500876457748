package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"wonderwall/internal/ipc"
)

func NewKillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kill",
		Short: "Stop the wonderwall daemon",
		Run: func(c *cobra.Command, args []string) {
			body, err := ipc.SendRequest(socketPath(), ipc.VerbKill, "")
			if err != nil {
				log.Fatalf("Failed to send 'kill' command: %v", err)
			}
			log.Info(body)
		},
	}
}
