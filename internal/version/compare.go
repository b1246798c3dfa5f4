package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckVersionCompatibility checks if the server version and the version a
// config file was written for are compatible.
// Returns nil if compatible, error with details if not.
//
// Compatibility Rules:
//   - If either version is "main" (development build), compatibility check is skipped
//   - Major versions must match exactly
//   - Minor versions must match exactly
//   - Patch versions can differ (e.g., 1.2.0 is compatible with 1.2.5)
func CheckVersionCompatibility(serverVersion, configVersion string) error {
	// Strip 'v' prefix if present for consistency
	serverVersion = strings.TrimPrefix(serverVersion, "v")
	configVersion = strings.TrimPrefix(configVersion, "v")

	// Skip version check for "main" (development builds)
	if serverVersion == "main" || configVersion == "main" {
		return nil
	}

	serverSemver, err := semver.NewVersion(serverVersion)
	if err != nil {
		return fmt.Errorf("invalid server version '%s': %w", serverVersion, err)
	}

	configSemver, err := semver.NewVersion(configVersion)
	if err != nil {
		return fmt.Errorf("invalid config version '%s': %w", configVersion, err)
	}

	if serverSemver.Major() != configSemver.Major() {
		return fmt.Errorf("major version mismatch: server is %d.x.x but config requires %d.x.x",
			serverSemver.Major(), configSemver.Major())
	}

	if serverSemver.Minor() != configSemver.Minor() {
		return fmt.Errorf("minor version mismatch: server is %d.%d.x but config requires %d.%d.x",
			serverSemver.Major(), serverSemver.Minor(),
			configSemver.Major(), configSemver.Minor())
	}

	// Patch versions can differ, so we're compatible
	return nil
}
