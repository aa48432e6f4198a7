package types

import (
	"strings"

	"github.com/pkg/errors"
)

const DefaultNamespace = "minecraft"

// ResourceLocation is a namespaced identifier, like "minecraft:overworld".
// It is used as a protocol-level key and encodes on the wire as its
// canonical string form.
type ResourceLocation struct {
	Namespace string
	Path      string
}

// ParseResourceLocation parses "namespace:path". Without a colon the
// namespace defaults to "minecraft".
func ParseResourceLocation(s string) (ResourceLocation, error) {
	var rl ResourceLocation

	namespace := DefaultNamespace
	path := s
	if i := strings.IndexByte(s, ':'); i >= 0 {
		if i > 0 {
			namespace = s[:i]
		}
		path = s[i+1:]
	}

	if !isValidNamespace(namespace) {
		return rl, errors.Errorf("invalid resource location namespace %q", namespace)
	}
	if !isValidPath(path) {
		return rl, errors.Errorf("invalid resource location path %q", path)
	}

	rl.Namespace = namespace
	rl.Path = path
	return rl, nil
}

func (rl ResourceLocation) String() string {
	return rl.Namespace + ":" + rl.Path
}

func (rl ResourceLocation) IsZero() bool {
	return rl.Namespace == "" && rl.Path == ""
}

func isValidNamespace(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isNamespaceChar(s[i]) {
			return false
		}
	}
	return true
}

func isValidPath(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isNamespaceChar(s[i]) && s[i] != '/' {
			return false
		}
	}
	return true
}

func isNamespaceChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' || c == '-' || c == '.'
}
