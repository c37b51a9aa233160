package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr)
	app.Reader = strings.NewReader(stdin)
	err := app.RunContext(context.Background(), append([]string{"starkhash"}, args...))
	return stdout.String(), err
}

func TestHashKnownAnswers(t *testing.T) {
	cases := map[string]string{
		"poseidon": "e009555c4b7588178e43f9c727b161815dc099834ca05ea2c8c0bb059f4530a5",
		"rescue":   "94bf60b96bc4aa1ca1d6c4d39e6f87207aadc3257b3cf668b0357f4326d04536",
		"gmimc":    "73d04029a22b86f3ec50a16ac3ea1e1a474aff4d297d1998a26a416c54d82525",
	}
	for name, want := range cases {
		out, err := run(t, "", "hash", "--func", name, "--elements", "1, 2, 3, 4")
		require.NoError(t, err)
		require.Equal(t, want+"\n", out)
	}
}

func TestHashHexInput(t *testing.T) {
	out, err := run(t, "", "hash", "-f", "sha3", "--hex", "616263")
	require.NoError(t, err)
	require.Equal(t, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532\n", out)
}

func TestHashRejectsOversizedInput(t *testing.T) {
	_, err := run(t, "", "hash", "--func", "poseidon", "--hex", strings.Repeat("00", 65))
	require.ErrorContains(t, err, "at most 64")

	_, err = run(t, "", "hash", "--func", "nope", "--hex", "00")
	require.ErrorContains(t, err, "unknown hash function")

	_, err = run(t, "", "hash", "--hex", "00", "--elements", "1")
	require.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := run(t, "", "list")
	require.NoError(t, err)
	for _, name := range []string{"poseidon", "rescue", "gmimc", "blake3", "sha3"} {
		require.Contains(t, out, name)
	}
}

func TestDigestDefault(t *testing.T) {
	out, err := run(t, "", "digest", "1", "2", "3", "4")
	require.NoError(t, err)
	require.Equal(t, "279286848567113119869118759719823148634 74099529548440269876339428048800829206\n", out)

	_, err = run(t, "", "digest", "1", "2", "3", "4", "5")
	require.ErrorContains(t, err, "rate is 4")
}

func TestDigestCustomParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
width = 2
rate = 1
digest_size = 1
rounds = 3
cycle_length = 2
mds = ["2", "1", "1", "1"]
inv_mds = ["1", "340282366920938463463374557953744961536", "340282366920938463463374557953744961536", "2"]
ark = [["1", "2"], ["3", "4"], ["5", "6"], ["7", "8"]]
`), 0o600))

	out, err := run(t, "", "digest", "--params", path, "5")
	require.NoError(t, err)
	require.Equal(t, "163592686883075324623746591581193324732\n", out)
}

func TestDigestBadParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
width = 2
rate = 1
digest_size = 1
rounds = 3
cycle_length = 2
mds = ["2", "1", "1", "1"]
inv_mds = ["1", "0", "0", "1"]
ark = [["1", "2"], ["3", "4"], ["5", "6"], ["7", "8"]]
`), 0o600))

	_, err := run(t, "", "digest", "--params", path, "5")
	require.ErrorContains(t, err, "inverse")

	require.NoError(t, os.WriteFile(path, []byte("width = 2\ncolour = 1\n"), 0o600))
	_, err = run(t, "", "digest", "--params", path)
	require.ErrorContains(t, err, "unknown key")
}

func TestBatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.txt")
	require.NoError(t, os.WriteFile(path, []byte("616263\n\n0x616263\n"), 0o600))

	out, err := run(t, "", "batch", "--func", "sha3", path)
	require.NoError(t, err)
	line := "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532\n"
	require.Equal(t, line+line, out)

	require.NoError(t, os.WriteFile(path, []byte("zz\n"), 0o600))
	_, err = run(t, "", "batch", path)
	require.ErrorContains(t, err, "line 1")
}
