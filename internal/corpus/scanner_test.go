package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theodore-s-beers/hemistich/internal/model"
)

// TestSortByStem verifies the ordering comparator: numeric stems
// ascending, non-numeric stems after all numeric ones.
func TestSortByStem(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "numeric ascending with non-numeric last",
			input: []string{"2.txt", "10.txt", "1.txt", "abstract.txt"},
			want:  []string{"1.txt", "2.txt", "10.txt", "abstract.txt"},
		},
		{
			name:  "numeric order not lexicographic",
			input: []string{"100.txt", "20.txt", "3.txt"},
			want:  []string{"3.txt", "20.txt", "100.txt"},
		},
		{
			name:  "non-numeric stems alphabetical among themselves",
			input: []string{"notes.txt", "abstract.txt", "5.txt"},
			want:  []string{"5.txt", "abstract.txt", "notes.txt"},
		},
		{
			name:  "leading zeros parse numerically",
			input: []string{"007.txt", "1.txt"},
			want:  []string{"1.txt", "007.txt"},
		},
		{
			name:  "mixed digit-letter stem is non-numeric",
			input: []string{"1a.txt", "2.txt"},
			want:  []string{"2.txt", "1a.txt"},
		},
		{
			name:  "negative-looking stem is non-numeric",
			input: []string{"-1.txt", "2.txt"},
			want:  []string{"2.txt", "-1.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := append([]string(nil), tt.input...)
			SortByStem(names)
			assert.Equal(t, tt.want, names)
		})
	}
}

// TestListDirOrdering verifies that ListDir returns matching files in
// processing order, with full paths.
func TestListDirOrdering(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"2.txt", "10.txt", "1.txt", "abstract.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x\ny\n"), 0o644))
	}

	paths, err := ListDir(dir, "*.txt")
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "1.txt"),
		filepath.Join(dir, "2.txt"),
		filepath.Join(dir, "10.txt"),
		filepath.Join(dir, "abstract.txt"),
	}
	assert.Equal(t, want, paths)
}

// TestListDirPattern verifies that only files matching the pattern are
// selected and subdirectories are ignored.
func TestListDirPattern(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))

	paths, err := ListDir(dir, "*.txt")
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "1.txt")}, paths)
}

// TestListDirMissing verifies the precondition error: a directory that
// does not exist aborts with ExitDirNotFound before any counting.
func TestListDirMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "hafiz-9")

	_, err := ListDir(missing, "*.txt")
	require.Error(t, err)

	cliErr, ok := err.(*model.CLIError)
	require.True(t, ok, "expected a CLIError")
	assert.Equal(t, model.ExitDirNotFound, cliErr.Code)
	assert.Equal(t, "Directory "+missing+" does not exist", cliErr.Message)
}

// TestListDirFileNotDir verifies that a plain file where a directory is
// expected is treated as missing.
func TestListDirFileNotDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "hafiz-1")
	require.NoError(t, os.WriteFile(file, []byte("not a dir"), 0o644))

	_, err := ListDir(file, "*.txt")
	require.Error(t, err)

	cliErr, ok := err.(*model.CLIError)
	require.True(t, ok, "expected a CLIError")
	assert.Equal(t, model.ExitDirNotFound, cliErr.Code)
}
