package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckVersionCompatibility(t *testing.T) {
	tests := []struct {
		name          string
		serverVersion string
		configVersion string
		expectError   bool
		errorContains string
	}{
		{
			name:          "exact match",
			serverVersion: "1.2.0",
			configVersion: "1.2.0",
			expectError:   false,
		},
		{
			name:          "server patch higher",
			serverVersion: "1.2.1",
			configVersion: "1.2.0",
			expectError:   false,
		},
		{
			name:          "config patch higher",
			serverVersion: "1.2.0",
			configVersion: "1.2.5",
			expectError:   false,
		},
		{
			name:          "minor mismatch",
			serverVersion: "1.3.0",
			configVersion: "1.2.0",
			expectError:   true,
			errorContains: "minor version mismatch",
		},
		{
			name:          "major mismatch",
			serverVersion: "2.0.0",
			configVersion: "1.2.0",
			expectError:   true,
			errorContains: "major version mismatch",
		},
		{
			name:          "server dev build skips check",
			serverVersion: "main",
			configVersion: "1.2.0",
			expectError:   false,
		},
		{
			name:          "config dev build skips check",
			serverVersion: "1.2.0",
			configVersion: "main",
			expectError:   false,
		},
		{
			name:          "v prefix is stripped",
			serverVersion: "v1.2.0",
			configVersion: "1.2.3",
			expectError:   false,
		},
		{
			name:          "invalid server version",
			serverVersion: "not-a-version",
			configVersion: "1.2.0",
			expectError:   true,
			errorContains: "invalid server version",
		},
		{
			name:          "invalid config version",
			serverVersion: "1.2.0",
			configVersion: "also.not.valid.x",
			expectError:   true,
			errorContains: "invalid config version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckVersionCompatibility(tt.serverVersion, tt.configVersion)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, Version, GetVersion())
}
