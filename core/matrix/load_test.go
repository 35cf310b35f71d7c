// core/matrix/load_test.go
package matrix

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadAllSupported(t *testing.T) {
	for _, id := range Supported() {
		m, err := Load(id)
		if err != nil {
			t.Fatalf("Load(%s): %v", id, err)
		}
		if m.Len() != 24 {
			t.Errorf("%s: Len()=%d, want 24", id, m.Len())
		}
		if got := m.Identity(); got != id {
			t.Errorf("%s: Identity()=%s", id, got)
		}
	}
}

func TestLoadUnsupportedVariant(t *testing.T) {
	cases := []Identity{
		{BLOSUM, 999},
		{BLOSUM, 100},
		{PAM, 62},
		{Family("NUC"), 44},
	}
	for _, id := range cases {
		_, err := Load(id)
		if !errors.Is(err, ErrUnsupportedVariant) {
			t.Errorf("Load(%s): err=%v, want ErrUnsupportedVariant", id, err)
		}
	}
}

func TestLoadUnsupportedBeforeSource(t *testing.T) {
	called := false
	src := func(Identity) ([]byte, error) { called = true; return nil, nil }
	_, err := LoadFrom(src, Identity{BLOSUM, 999})
	if !errors.Is(err, ErrUnsupportedVariant) {
		t.Fatalf("err=%v, want ErrUnsupportedVariant", err)
	}
	if called {
		t.Error("source consulted for unsupported variant")
	}
}

func TestLoadNotFound(t *testing.T) {
	src := func(id Identity) ([]byte, error) {
		return nil, errors.Join(ErrNotFound, errors.New(id.String()))
	}
	_, err := LoadFrom(src, Identity{BLOSUM, 62})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":     `{{`,
		"wrong shape":  `[1, 2, 3]`,
		"string score": `{"A": {"A": "four"}}`,
		"empty":        `{}`,
		"long key":     `{"AA": {"AA": 1}}`,
	}
	for name, raw := range cases {
		src := func(Identity) ([]byte, error) { return []byte(raw), nil }
		_, err := LoadFrom(src, Identity{BLOSUM, 62})
		if !errors.Is(err, ErrMalformedData) {
			t.Errorf("%s: err=%v, want ErrMalformedData", name, err)
		}
	}
}

func TestLoadNonSquare(t *testing.T) {
	cases := map[string]string{
		"missing column": `{"A": {"A": 1}, "R": {"A": 0, "R": 5}}`,
		"stray column":   `{"A": {"A": 1, "Z": 0}, "R": {"A": 0, "R": 5}}`,
	}
	for name, raw := range cases {
		src := func(Identity) ([]byte, error) { return []byte(raw), nil }
		_, err := LoadFrom(src, Identity{BLOSUM, 62})
		if !errors.Is(err, ErrNonSquareMatrix) {
			t.Errorf("%s: err=%v, want ErrNonSquareMatrix", name, err)
		}
	}
}

func TestLoadAsymmetric(t *testing.T) {
	raw := `{"A": {"A": 4, "R": -1}, "R": {"A": -2, "R": 5}}`
	src := func(Identity) ([]byte, error) { return []byte(raw), nil }
	_, err := LoadFrom(src, Identity{BLOSUM, 62})
	if !errors.Is(err, ErrAsymmetricMatrix) {
		t.Fatalf("err=%v, want ErrAsymmetricMatrix", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "-1") || !strings.Contains(msg, "-2") {
		t.Errorf("error %q does not name both scores", msg)
	}
}

func TestLoadSymmetryEverywhere(t *testing.T) {
	for _, id := range Supported() {
		m, err := Load(id)
		if err != nil {
			t.Fatalf("Load(%s): %v", id, err)
		}
		syms := m.Symbols()
		for _, a := range syms {
			for _, b := range syms {
				ab, err := m.Score(a, b)
				if err != nil {
					t.Fatalf("%s: Score(%c,%c): %v", id, a, b, err)
				}
				ba, _ := m.Score(b, a)
				if ab != ba {
					t.Errorf("%s: Score(%c,%c)=%d != Score(%c,%c)=%d", id, a, b, ab, b, a, ba)
				}
			}
		}
	}
}
