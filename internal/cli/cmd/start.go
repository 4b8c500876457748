package cmd

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	daemon "github.com/sevlyar/go-daemon"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wonderwall/internal/cli/cmd/utils"
	"wonderwall/internal/ipc"
	"wonderwall/internal/wallpaper"
)

func NewStartCmd() *cobra.Command {
	startCmd := &cobra.Command{
		Use:   "start [directory]",
		Short: "Start the wallpaper daemon",
		Long: `Starts the wallpaper daemon. With --background the process detaches and
logs to a rotating file; otherwise it runs in the current terminal.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(c *cobra.Command, args []string) {
			if len(args) > 0 {
				viper.Set("wallpapers", args[0])
			}

			if background, err := c.Flags().GetBool("background"); err == nil && background {
				startDetached()
				return
			}
			StartDaemon()
		},
	}

	startCmd.Flags().BoolP("background", "b", false, "Detach and run in the background")
	startCmd.Flags().Int("duration", 300, "Seconds between wallpaper switches")
	viper.BindPFlag("duration", startCmd.Flags().Lookup("duration"))
	startCmd.Flags().Bool("recursive", false, "Descend into subdirectories of the wallpaper directory")
	viper.BindPFlag("recursive", startCmd.Flags().Lookup("recursive"))
	startCmd.Flags().Bool("random", false, "Cycle wallpapers in random order")
	viper.BindPFlag("random", startCmd.Flags().Lookup("random"))

	return startCmd
}

// startDetached re-runs the daemon as a detached child process and returns
// in the parent. The child ends up in StartDaemon with a rotating logger.
func startDetached() {
	ctx := &daemon.Context{
		PidFileName: filepath.Join(os.TempDir(), "wonderwall.pid"),
		PidFilePerm: 0644,
		Umask:       027,
	}

	child, err := ctx.Reborn()
	if err != nil {
		log.Fatalf("Unable to start background daemon: %v", err)
	}
	if child != nil {
		log.Infof("wonderwall daemon started (PID %d)", child.Pid)
		return
	}
	defer ctx.Release()

	setupRotatingLogger()
	StartDaemon()
}

// StartDaemon wires the manager to the control server and blocks until a
// KILL request, a termination signal, or a fatal cycler error.
func StartDaemon() {
	log.Infof("StartDaemon() started in PID: %d", os.Getpid())

	directory := utils.CanonicalPath(viper.GetString("wallpapers"))
	socketPath := viper.GetString("socket")
	interval := time.Duration(viper.GetInt("duration")) * time.Second

	log.Infof("Using pictures from %s", directory)

	manager, err := wallpaper.NewManager(
		directory,
		viper.GetBool("recursive"),
		viper.GetBool("random"),
		interval,
		wallpaper.NewHyprctlSetter(),
	)
	if err != nil {
		log.Fatalf("Error reading wallpapers directory: %v", err)
	}

	server := ipc.NewServer(manager, socketPath)
	if err := server.Listen(); err != nil {
		log.Fatalf("Unable to bind control socket: %v", err)
	}

	// The cycler is fatal-on-failure: if the external tool breaks, the
	// daemon can't do its job and the accept loop is torn down with the
	// cycler's error.
	go func() {
		if err := manager.Run(); err != nil {
			log.Errorf("Wallpaper cycler failed: %v", err)
			server.Fail(err)
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		s := <-signals
		log.Infof("Received %v, shutting down", s)
		server.Shutdown()
	}()

	log.Infof("Starting server at %s", socketPath)
	if err := server.Serve(); err != nil {
		log.Fatalf("Server ran into error: %v", err)
	}

	manager.Stop()
	log.Info("wonderwall exited")
}

func setupRotatingLogger() {
	home := os.Getenv("HOME")
	logDir := filepath.Join(home, ".local", "share", "wonderwall")
	logPath := filepath.Join(logDir, "wonderwall.log")

	writer, err := rotatelogs.New(
		logPath+".%Y%m%d%H%M",
		rotatelogs.WithLinkName(logPath),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationSize(10*1024*1024),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		log.Fatalf("failed to configure log rotation: %v", err)
	}

	log.SetOutput(writer)
	log.SetLevel(log.InfoLevel)
}
