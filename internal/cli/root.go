package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wonderwall"
	"wonderwall/internal/cli/cmd"
	"wonderwall/internal/cli/cmd/utils"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wonderwall",
	Short: "A wallpaper engine with an unreasonably good name",
	Long: `Wonderwall cycles desktop wallpapers from a directory on a timer and
takes commands over a unix socket. Start the daemon with "wonderwall start"
and drive it with the other subcommands.`,
	Run: func(c *cobra.Command, args []string) {
		if v, err := c.Flags().GetBool("show-config"); err == nil && v {
			log.Infof("Using config file: %v", viper.ConfigFileUsed())
			log.Infof("All settings:")
			utils.PrintJSONColored(viper.AllSettings())
			return
		}

		if v, err := c.Flags().GetBool("installconfig"); err == nil && v {
			utils.InstallDefaultConfig()
			return
		}

		if v, err := c.Flags().GetBool("version"); err == nil && v {
			babyBlue := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
			green := lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
			log.Infof("%v version %v",
				babyBlue.Render("wonderwall"),
				green.Render(strings.Trim(wonderwall.Version, "\n\r ")))
			return
		}

		_ = c.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)
	RegisterFlags(rootCmd)

	rootCmd.AddCommand(
		cmd.NewStartCmd(),
		cmd.NewSetWallpaperCmd(),
		cmd.NewGetWallpaperCmd(),
		cmd.NewNextCmd(),
		cmd.NewGetDirCmd(),
		cmd.NewSetDirCmd(),
		cmd.NewPingCmd(),
		cmd.NewKillCmd(),
		cmd.NewGenManCmd(rootCmd),
	)
}
