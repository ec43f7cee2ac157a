package llvm

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// A Version is an LLVM release version in major.minor form.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

// ParseVersion parses a version in "major.minor" form. A bare major
// ("15") is accepted and means minor zero.
func ParseVersion(s string) (Version, error) {
	maj, min, found := strings.Cut(s, ".")
	v := Version{}

	var err error
	if v.Major, err = strconv.Atoi(maj); err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	if found {
		if v.Minor, err = strconv.Atoi(min); err != nil {
			return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
		}
	}
	return v, nil
}

// String returns the version in "major.minor" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// IsZero reports whether v is the zero version.
func (v Version) IsZero() bool {
	return v.Major == 0 && v.Minor == 0
}

// Compare returns -1, 0 or +1 comparing v against w numerically,
// so that 9.0 orders before 12.0.
func (v Version) Compare(w Version) int {
	return semver.Compare(v.canonical(), w.canonical())
}

func (v Version) canonical() string {
	return fmt.Sprintf("v%d.%d", v.Major, v.Minor)
}
