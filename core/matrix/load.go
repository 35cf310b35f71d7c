// core/matrix/load.go
package matrix

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Load resolves an identity against the bundled data and returns a
// validated matrix.
func Load(id Identity) (*Matrix, error) {
	return LoadFrom(EmbeddedSource, id)
}

// LoadFrom resolves an identity against an arbitrary source. The variant is
// checked before the source is consulted, so an unsupported identity fails
// the same way regardless of source. The bytes must decode into a two-level
// symbol->symbol->score mapping; shape and symmetry are then validated by
// New.
func LoadFrom(src Source, id Identity) (*Matrix, error) {
	if !id.Supported() {
		return nil, fmt.Errorf("%w: %s (supported: %s)",
			ErrUnsupportedVariant, id, supportedList())
	}
	raw, err := src(id)
	if err != nil {
		return nil, err
	}
	var scores map[string]map[string]int
	if err := json.Unmarshal(raw, &scores); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedData, id, err)
	}
	return New(id, scores)
}

func supportedList() string {
	ids := Supported()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return strings.Join(names, " ")
}
