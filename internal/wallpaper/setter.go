package wallpaper

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/charmbracelet/log"
)

// Setter applies a wallpaper through an external tool. Implementations have
// no timeout; a hung tool stalls the caller.
type Setter interface {
	Apply(path string) error
}

// ApplyError carries the raw output of the external tool when a step did
// not report success.
type ApplyError struct {
	Output string
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("wallpaper tool reported failure: %q", e.Output)
}

// hyprpaper prints exactly this on success for every command.
const okMarker = "ok\n"

type runCommandFunc func(name string, args ...string) (string, error)

// HyprctlSetter drives hyprpaper through hyprctl. Applying a wallpaper is
// three sequential commands: preload the image, set it, unload everything
// unused. Each must print the literal success marker.
type HyprctlSetter struct {
	run runCommandFunc
}

func NewHyprctlSetter() *HyprctlSetter {
	return &HyprctlSetter{run: runCommand}
}

func (s *HyprctlSetter) Apply(path string) error {
	steps := [][]string{
		{"hyprctl", "hyprpaper", "preload", path},
		{"hyprctl", "hyprpaper", "wallpaper", ", " + path},
		{"hyprctl", "hyprpaper", "unload", "unused"},
	}
	for _, step := range steps {
		stdout, err := s.run(step[0], step[1:]...)
		if err != nil {
			return err
		}
		if stdout != okMarker {
			return &ApplyError{Output: stdout}
		}
	}
	return nil
}

// runCommand captures stdout of a command. A non-zero exit is not an error
// here; the caller judges success by the tool's output.
func runCommand(name string, args ...string) (string, error) {
	log.Debugf("Executing command: %s %v", name, args)

	stdout, err := exec.Command(name, args...).Output()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return "", err
	}
	return string(stdout), nil
}
