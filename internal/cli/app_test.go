// internal/cli/app_test.go
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the app against a throwaway config so tests never touch the
// user's home directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	var buf bytes.Buffer
	app := newApp(&buf)
	argv := append([]string{"biobase", "--config", cfgPath}, args...)
	err := app.Run(argv)
	return buf.String(), err
}

func TestMatrixList(t *testing.T) {
	out, err := run(t, "matrix", "list")
	require.NoError(t, err)
	for _, name := range []string{"BLOSUM45", "BLOSUM62", "BLOSUM90", "PAM30", "PAM250"} {
		assert.Contains(t, out, name)
	}
}

func TestMatrixScore(t *testing.T) {
	out, err := run(t, "matrix", "score", "--matrix", "BLOSUM62", "A", "W")
	require.NoError(t, err)
	assert.Equal(t, "-3\n", out)

	out, err = run(t, "--format", "json", "matrix", "score", "--matrix", "BLOSUM62", "A", "A")
	require.NoError(t, err)
	assert.Contains(t, out, `"score": 4`)
	assert.Contains(t, out, `"matrix": "BLOSUM62"`)
}

func TestMatrixScoreDefaultsFromConfig(t *testing.T) {
	// default config selects BLOSUM62
	out, err := run(t, "matrix", "score", "W", "C")
	require.NoError(t, err)
	assert.Equal(t, "-2\n", out)
}

func TestMatrixScoreErrors(t *testing.T) {
	_, err := run(t, "matrix", "score", "--matrix", "BLOSUM999", "A", "A")
	assert.ErrorContains(t, err, "unsupported")

	_, err = run(t, "matrix", "score", "--matrix", "BLOSUM62", "a", "A")
	assert.ErrorContains(t, err, "unknown residue")

	_, err = run(t, "matrix", "score", "A")
	assert.Error(t, err)
}

func TestMatrixShow(t *testing.T) {
	out, err := run(t, "matrix", "show", "--matrix", "PAM250")
	require.NoError(t, err)
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "*")
}

func TestMatrixVet(t *testing.T) {
	out, err := run(t, "matrix", "vet")
	require.NoError(t, err)
	assert.Contains(t, out, "BLOSUM62")
	assert.Contains(t, out, "PAM250")
	assert.Contains(t, out, "ok")
}

func TestMatrixConvert(t *testing.T) {
	table := "# demo\n   A  R\nA  4 -1\nR -1  5\n"
	in := filepath.Join(t.TempDir(), "demo.txt")
	require.NoError(t, os.WriteFile(in, []byte(table), 0600))

	out, err := run(t, "matrix", "convert", "--in", in)
	require.NoError(t, err)
	assert.Contains(t, out, `"A": 4`)

	// validation catches an asymmetric table when --name is given
	bad := "   A  R\nA  4 -1\nR -2  5\n"
	require.NoError(t, os.WriteFile(in, []byte(bad), 0600))
	_, err = run(t, "matrix", "convert", "--in", in, "--name", "BLOSUM62")
	assert.ErrorContains(t, err, "asymmetric")
}

func TestSeqCommands(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"seq", "transcribe", "ATCG"}, "AUCG\n"},
		{[]string{"seq", "complement", "ATCG"}, "TAGC\n"},
		{[]string{"seq", "revcomp", "ATCG"}, "CGAT\n"},
		{[]string{"seq", "gc", "GCGC"}, "100\n"},
		{[]string{"seq", "at", "ATGC"}, "50\n"},
		{[]string{"seq", "entropy", "AAAAAAA"}, "0\n"},
		{[]string{"seq", "translate", "AUGAAAUAA"}, "MK*\n"},
		{[]string{"seq", "translate", "--to-stop", "AUGAAAUAA"}, "MK\n"},
	}
	for _, c := range cases {
		out, err := run(t, c.args...)
		require.NoError(t, err, "args %v", c.args)
		assert.Equal(t, c.want, out, "args %v", c.args)
	}
}

func TestSeqORFs(t *testing.T) {
	out, err := run(t, "seq", "orfs", "ccatgccctaaatggggtag")
	require.NoError(t, err)
	assert.Contains(t, out, "2\t11\tATGCCCTAA")
	assert.Contains(t, out, "11\t20\tATGGGGTAG")

	out, err = run(t, "seq", "orfs", "CCCCCC")
	require.NoError(t, err)
	assert.Contains(t, out, "no open reading frames")
}

func TestSeqCAI(t *testing.T) {
	ref := "AAA: 80\nAAG: 20\nGCC: 50\nGCU: 10\nGCA: 20\nGCG: 20\n"
	path := filepath.Join(t.TempDir(), "ref.yaml")
	require.NoError(t, os.WriteFile(path, []byte(ref), 0600))

	out, err := run(t, "seq", "cai", "--ref", path, "AAAAAGGCCGCU")
	require.NoError(t, err)
	assert.Contains(t, out, "0.47287")
}

func TestSeqInvalidInput(t *testing.T) {
	_, err := run(t, "seq", "transcribe", "AXCG")
	assert.ErrorContains(t, err, "invalid nucleotide")

	_, err = run(t, "seq", "translate", "AUGGC")
	assert.ErrorContains(t, err, "multiple of 3")
}

func TestMotifFind(t *testing.T) {
	out, err := run(t, "motif", "find", "CDE", "ACDEFCDEF")
	require.NoError(t, err)
	assert.Equal(t, "1\t4\n5\t8\n", out)

	_, err = run(t, "motif", "find", "CDE", "GG12")
	assert.ErrorContains(t, err, "invalid residue")

	_, err = run(t, "motif", "find", "[", "GGGG")
	assert.ErrorContains(t, err, "does not compile")
}

func TestMotifList(t *testing.T) {
	out, err := run(t, "motif", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "kozak")
	assert.Contains(t, out, "AAUAAA")
}

func TestBadFormat(t *testing.T) {
	_, err := run(t, "--format", "xml", "matrix", "list")
	assert.ErrorContains(t, err, "unknown format")
}

func TestYAMLOutput(t *testing.T) {
	out, err := run(t, "--format", "yaml", "matrix", "score", "--matrix", "PAM250", "A", "A")
	require.NoError(t, err)
	assert.Contains(t, out, "score: 2")
}
