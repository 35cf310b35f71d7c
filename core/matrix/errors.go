// core/matrix/errors.go
package matrix

import "errors"

var (
	// ErrUnsupportedVariant indicates a family/variant pair outside the
	// fixed supported enumeration.
	ErrUnsupportedVariant = errors.New("matrix: unsupported matrix variant")
	// ErrNotFound indicates the backing resource for an identity is missing.
	ErrNotFound = errors.New("matrix: matrix data not found")
	// ErrMalformedData indicates the backing bytes do not parse into a
	// two-level symbol->symbol->score mapping.
	ErrMalformedData = errors.New("matrix: malformed matrix data")
	// ErrNonSquareMatrix indicates a row whose column keys differ from the
	// row key set.
	ErrNonSquareMatrix = errors.New("matrix: row and column symbols differ")
	// ErrAsymmetricMatrix indicates score(a,b) != score(b,a) for some pair.
	ErrAsymmetricMatrix = errors.New("matrix: asymmetric score")
	// ErrUnknownSymbol indicates a lookup with a symbol absent from the matrix.
	ErrUnknownSymbol = errors.New("matrix: unknown residue symbol")
)
