package catalyst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	catalyst "github.com/catalyst-neuromorphic/catalyst-go"
)

// TestVersion_Constants verifies version constants are set correctly.
func TestVersion_Constants(t *testing.T) {
	assert.NotEmpty(t, catalyst.Version, "Version should not be empty")
	assert.NotEmpty(t, catalyst.APIVersion, "APIVersion should not be empty")
	assert.NotEmpty(t, catalyst.APIVersionRange, "APIVersionRange should not be empty")

	assert.True(t, catalyst.IsCompatible(catalyst.APIVersion),
		"the targeted API version must be inside the supported range")
}

// TestIsCompatible tests the IsCompatible convenience function.
func TestIsCompatible(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		compatible bool
	}{
		{name: "exact target version", version: "1.0.0", compatible: true},
		{name: "patch version in range", version: "1.0.3", compatible: true},
		{name: "minor version in range", version: "1.4.0", compatible: true},
		{name: "major version too new", version: "2.0.0", compatible: false},
		{name: "version too old", version: "0.9.0", compatible: false},
		{name: "garbage version", version: "not-a-version", compatible: false},
		{name: "empty version", version: "", compatible: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.compatible, catalyst.IsCompatible(tt.version))
		})
	}
}
