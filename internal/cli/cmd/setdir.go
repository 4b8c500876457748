package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"wonderwall/internal/cli/cmd/utils"
	"wonderwall/internal/ipc"
)

func NewSetDirCmd() *cobra.Command {
	setDirCmd := &cobra.Command{
		Use:   "setdir [directory]",
		Short: "Point the daemon at a new wallpaper directory",
		Args:  cobra.ExactArgs(1),
		Run: func(c *cobra.Command, args []string) {
			recursive, _ := c.Flags().GetBool("recursive")
			random, _ := c.Flags().GetBool("random")

			// Wire sentinel: empty field means false, anything else true.
			body := fmt.Sprintf("%s\n%s\n%s", flagField(recursive), flagField(random), utils.CanonicalPath(args[0]))

			response, err := ipc.SendRequest(socketPath(), ipc.VerbSetDir, body)
			if err != nil {
				log.Fatalf("Failed to send 'setdir' command: %v", err)
			}
			log.Info(response)
		},
	}

	setDirCmd.Flags().Bool("recursive", false, "Also cycle wallpapers in subdirectories")
	setDirCmd.Flags().Bool("random", false, "Cycle the new directory in random order")

	return setDirCmd
}

func flagField(value bool) string {
	if value {
		return "true"
	}
	return ""
}
