package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"wonderwall/internal/ipc"
)

func NewPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check whether the daemon is alive",
		Run: func(c *cobra.Command, args []string) {
			if err := ipc.Ping(socketPath()); err != nil {
				log.Fatalf("Daemon did not answer: %v", err)
			}
			log.Info("pong")
		},
	}
}
