package is

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/onsi/gomega/gcustom"
	"github.com/pkg/errors"

	"github.com/buildpacks/expect/engine"
)

// SamePath succeeds when the actual path names expected once both are made absolute
// and cleaned. Neither path needs to exist.
func SamePath(expected string) engine.Constraint {
	return pathMatcher(expected, fmt.Sprintf("be the same path as %q", expected), func(rel string) bool {
		return rel == "."
	})
}

// SamePathOrUnder succeeds for expected itself and any path below it.
func SamePathOrUnder(expected string) engine.Constraint {
	return pathMatcher(expected, fmt.Sprintf("be %q or a path under it", expected), func(rel string) bool {
		return rel == "." || below(rel)
	})
}

// SubPathOf succeeds for paths strictly below expected.
func SubPathOf(expected string) engine.Constraint {
	return pathMatcher(expected, fmt.Sprintf("be a path under %q", expected), below)
}

func below(rel string) bool {
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func pathMatcher(expected, message string, accept func(rel string) bool) engine.Constraint {
	return gcustom.MakeMatcher(func(actual string) (bool, error) {
		base, err := filepath.Abs(expected)
		if err != nil {
			return false, errors.Wrapf(err, "resolving %q", expected)
		}
		target, err := filepath.Abs(actual)
		if err != nil {
			return false, errors.Wrapf(err, "resolving %q", actual)
		}

		rel, err := filepath.Rel(base, target)
		if err != nil {
			return false, nil
		}
		return accept(rel), nil
	}, engine.Literal(message))
}
