package version

// Version is the current version of the marketpulse server.
// This value is set at build time using ldflags:
// -ldflags "-X github.com/marketpulse-io/marketpulse/internal/version.Version=1.2.3"
// The value "main" indicates a development build and skips config
// compatibility checks.
var Version = "v1.0.0"

// GetVersion returns the current version of the server.
func GetVersion() string {
	return Version
}
