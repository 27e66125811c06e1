package config

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/buildpacks/expect/internal/style"
)

// ParseUndecodedKeys names the unknown keys, collapsing the keys of an unknown table
// into the table.
func ParseUndecodedKeys(undecodedKeys []toml.Key) string {
	unusedKeys := map[string]interface{}{}
	for _, key := range undecodedKeys {
		keyName := key.String()

		parent := strings.Split(keyName, ".")[0]

		if _, ok := unusedKeys[parent]; !ok {
			unusedKeys[keyName] = nil
		}
	}

	var errorKeys []string
	for errorKey := range unusedKeys {
		errorKeys = append(errorKeys, style.Symbol(errorKey))
	}
	sort.Strings(errorKeys)
	return strings.Join(errorKeys, ", ")
}
