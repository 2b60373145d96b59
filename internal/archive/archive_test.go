package archive

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readArchive(t *testing.T, path string) map[string][]byte {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	entries := map[string][]byte{}
	for _, f := range r.File {
		assert.Equal(t, zip.Deflate, f.Method)
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		entries[f.Name] = content
	}
	return entries
}

func TestZip_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "export_2024-01-01.csv")
	content := []byte(strings.Repeat("1,9983,101.5,2024-01-01 09:00:00\n", 1000))
	require.NoError(t, os.WriteFile(src, content, 0o644))

	dst, err := Zip(src)
	require.NoError(t, err)
	assert.Equal(t, src+".zip", dst)

	entries := readArchive(t, dst)
	require.Len(t, entries, 1)
	assert.Equal(t, content, entries["export_2024-01-01.csv"])

	// source untouched
	after, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, content, after)

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(len(content)))
}

func TestZip_EmptyFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "export_2024-01-01.csv")
	require.NoError(t, os.WriteFile(src, nil, 0o644))

	dst, err := Zip(src)
	require.NoError(t, err)

	entries := readArchive(t, dst)
	require.Len(t, entries, 1)
	assert.Empty(t, entries["export_2024-01-01.csv"])
}

func TestZip_OverwritesExisting(t *testing.T) {
	src := filepath.Join(t.TempDir(), "export_2024-01-01.csv")
	require.NoError(t, os.WriteFile(src, []byte("a,b\n"), 0o644))
	require.NoError(t, os.WriteFile(Path(src), []byte("not a zip"), 0o644))

	dst, err := Zip(src)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"export_2024-01-01.csv": []byte("a,b\n")}, readArchive(t, dst))
}

func TestZip_MissingSource(t *testing.T) {
	src := filepath.Join(t.TempDir(), "missing.csv")
	_, err := Zip(src)
	require.Error(t, err)

	_, statErr := os.Stat(Path(src))
	assert.True(t, os.IsNotExist(statErr))
}
