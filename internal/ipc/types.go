package ipc

// Command verbs understood by the daemon. Dispatch is case-insensitive.
const (
	VerbSetWallpaper = "SETWP"
	VerbGetWallpaper = "GETWP"
	VerbNext         = "NEXT"
	VerbGetDir       = "GETDIR"
	VerbSetDir       = "SETDIR"
	VerbPing         = "PING"
	VerbKill         = "KILL"
)

// Controller is the slice of the wallpaper manager the server needs. All
// methods must be safe for concurrent use.
type Controller interface {
	CurrentWallpaper() string
	Directory() string
	SetNextWallpaper(path string)
	SetDirectory(path string, recursive, random bool) error
	Cycle()
}
