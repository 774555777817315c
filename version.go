package catalyst

import (
	"github.com/Masterminds/semver/v3"
)

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/).
const Version = "0.1.0"

// APIVersion is the Catalyst Cloud API version this SDK was built against.
const APIVersion = "1.0.0"

// APIVersionRange is the range of API versions this SDK is expected to work
// with. Servers outside this range may reject requests or return schemas the
// SDK cannot decode.
const APIVersionRange = ">= 1.0.0, < 2.0.0"

// IsCompatible reports whether a server-reported API version falls within
// [APIVersionRange]. Unparseable versions are reported as incompatible.
func IsCompatible(version string) bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	constraint, err := semver.NewConstraint(APIVersionRange)
	if err != nil {
		return false
	}
	return constraint.Check(v)
}
