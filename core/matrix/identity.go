// core/matrix/identity.go
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Family is a substitution-matrix family tag.
type Family string

const (
	BLOSUM Family = "BLOSUM"
	PAM    Family = "PAM"
)

// Identity names exactly one matrix: a family plus a numeric variant,
// e.g. {BLOSUM, 62} for BLOSUM62.
type Identity struct {
	Family  Family
	Variant int
}

func (id Identity) String() string { return fmt.Sprintf("%s%d", id.Family, id.Variant) }

// families fixes iteration order; variants per family follow the bundled set.
var families = []Family{BLOSUM, PAM}

var variants = map[Family][]int{
	BLOSUM: {45, 50, 62, 80, 90},
	PAM:    {30, 70, 250},
}

// Supported reports whether the identity is in the bundled enumeration.
func (id Identity) Supported() bool {
	for _, v := range variants[id.Family] {
		if v == id.Variant {
			return true
		}
	}
	return false
}

// ParseIdentity parses a matrix name such as "BLOSUM62" or "pam250" into
// family and variant. The result may still be outside the bundled set;
// Load makes that check.
func ParseIdentity(name string) (Identity, error) {
	s := strings.ToUpper(strings.TrimSpace(name))
	i := 0
	for i < len(s) && (s[i] < '0' || s[i] > '9') {
		i++
	}
	if i == 0 || i == len(s) {
		return Identity{}, fmt.Errorf("%w: %q", ErrUnsupportedVariant, name)
	}
	v, err := strconv.Atoi(s[i:])
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %q", ErrUnsupportedVariant, name)
	}
	return Identity{Family: Family(s[:i]), Variant: v}, nil
}

// Supported returns every bundled identity, BLOSUM variants first, ascending.
func Supported() []Identity {
	var out []Identity
	for _, f := range families {
		for _, v := range variants[f] {
			out = append(out, Identity{Family: f, Variant: v})
		}
	}
	return out
}
