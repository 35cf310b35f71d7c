// core/matrix/source.go
package matrix

import (
	"embed"
	"fmt"
)

//go:embed data/*.json
var bundled embed.FS

// Source resolves the raw JSON bytes for an identity. Implementations
// report ErrNotFound when no resource exists for the identity.
type Source func(Identity) ([]byte, error)

// EmbeddedSource serves the matrices bundled with the library.
func EmbeddedSource(id Identity) ([]byte, error) {
	b, err := bundled.ReadFile(fmt.Sprintf("data/%s.json", id))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return b, nil
}
