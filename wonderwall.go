package wonderwall

import _ "embed"

// Version is the release version, stamped by the build.
var Version = "0.3.0"

//go:embed wonderwall.toml
var DefaultConfig string
