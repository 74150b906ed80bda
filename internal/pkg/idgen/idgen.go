// internal/pkg/idgen/idgen.go
package idgen

import (
	"strings"

	"github.com/google/uuid"
)

// Generator produces order identifiers. Injected into the order
// service so tests can substitute a deterministic sequence.
type Generator func() string

// NewOrderID returns a generator producing ids like "ORD-9f2b81c4a".
func NewOrderID() Generator {
	return func() string {
		compact := strings.ReplaceAll(uuid.NewString(), "-", "")
		return "ORD-" + compact[:9]
	}
}
