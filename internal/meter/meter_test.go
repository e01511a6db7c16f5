package meter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theodore-s-beers/hemistich/internal/model"
)

// repeatLines builds a poem of n copies of the given hemistich.
func repeatLines(hem string, n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = hem
	}
	return strings.Join(lines, "\n")
}

// TestPreprocess verifies blank-line collapsing and the minimum length
// check.
func TestPreprocess(t *testing.T) {
	poem := "الف\nب\n\nالف\nب\n\n\nالف\nب\nالف\nب\nالف\nب\n"

	got, err := Preprocess(poem)
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 10)
	for _, line := range lines {
		assert.NotEmpty(t, line)
	}
}

// TestPreprocessTooShort verifies that a poem under MinHemistichs lines
// is rejected with ExitPoemTooShort, naming the count found.
func TestPreprocessTooShort(t *testing.T) {
	_, err := Preprocess(repeatLines("الف", 9))
	require.Error(t, err)

	cliErr, ok := err.(*model.CLIError)
	require.True(t, ok, "expected a CLIError")
	assert.Equal(t, model.ExitPoemTooShort, cliErr.Code)
	assert.Contains(t, cliErr.Message, "Found 9 hemistichs")
}

// TestPreprocessCRLF verifies that Windows line endings do not defeat
// blank-line collapsing.
func TestPreprocessCRLF(t *testing.T) {
	poem := strings.ReplaceAll(repeatLines("الف", 10), "\n", "\r\n\r\n")

	got, err := Preprocess(poem)
	require.NoError(t, err)
	assert.Len(t, strings.Split(got, "\n"), 10)
}

// TestLoadPoemTooLarge verifies the size cap.
func TestLoadPoemTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.txt")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("a"), MaxFileSize+1), 0o644))

	_, err := LoadPoem(path)
	require.Error(t, err)

	cliErr, ok := err.(*model.CLIError)
	require.True(t, ok, "expected a CLIError")
	assert.Equal(t, model.ExitFileTooLarge, cliErr.Code)
	assert.Contains(t, cliErr.Message, "too large")
}

// TestLoadPoemMissing verifies the error for an unreadable file.
func TestLoadPoemMissing(t *testing.T) {
	_, err := LoadPoem(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)

	cliErr, ok := err.(*model.CLIError)
	require.True(t, ok, "expected a CLIError")
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)
}

// TestAssessLength verifies the meter-length bands and the hemistich cap
// on the divisor.
func TestAssessLength(t *testing.T) {
	tests := []struct {
		name         string
		totalLetters int
		hemistichs   int
		wantLong     bool
		wantNote     string
	}{
		{
			name:         "clearly long",
			totalLetters: 240,
			hemistichs:   10,
			wantLong:     true,
			wantNote:     "The meter appears to be long (muṡamman).",
		},
		{
			name:         "long but borderline",
			totalLetters: 230,
			hemistichs:   10,
			wantLong:     true,
			wantNote:     "(But this is pretty short for a long meter!)",
		},
		{
			name:         "short but borderline",
			totalLetters: 215,
			hemistichs:   10,
			wantLong:     false,
			wantNote:     "(But this is pretty long for a short meter!)",
		},
		{
			name:         "clearly short",
			totalLetters: 180,
			hemistichs:   10,
			wantLong:     false,
			wantNote:     "The meter appears to be short (musaddas; or mutaqārib muṡamman).",
		},
		{
			name: "divisor capped at MaxHemistichs",
			// 40 assessed hemistichs at 24 letters each; the extra 10
			// hemistichs beyond the cap were never counted.
			totalLetters: 960,
			hemistichs:   50,
			wantLong:     true,
			wantNote:     "Average letters per hemistich: 24.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Analysis{TotalLetters: tt.totalLetters}
			a.AssessLength(tt.hemistichs)

			assert.Equal(t, tt.wantLong, a.LongMeter)
			assert.Equal(t, !tt.wantLong, a.ShortMeter)
			assert.Contains(t, a.Report(), tt.wantNote)
		})
	}
}

// TestAnalyze verifies the per-hemistich walk: echoed skeletons, letter
// tallies, and marker collection.
func TestAnalyze(t *testing.T) {
	poem := repeatLines("دوست دارم دوست دارم دوست دارم", 10)

	a, err := Analyze(poem)
	require.NoError(t, err)

	// Six words of four letters each per hemistich.
	assert.Equal(t, 240, a.TotalLetters)

	// "Dūst" pins long-first and short-second on every hemistich.
	assert.Equal(t, 10, a.Syllables.LongFirstMarkers)
	assert.Equal(t, 10, a.Syllables.ShortSecondMarkers)
	assert.Zero(t, a.Syllables.ShortFirstMarkers)
	assert.Zero(t, a.Syllables.LongSecondMarkers)

	assert.Contains(t, a.Report(), "*** Assessing the following hemistichs ***")
	assert.Contains(t, a.Report(), "1: دوست دارم دوست دارم دوست دارم")
	assert.Contains(t, a.Report(), "10: دوست دارم دوست دارم دوست دارم")
}

// TestAnalyzeBadScript verifies that an unexpected character anywhere
// aborts the analysis.
func TestAnalyzeBadScript(t *testing.T) {
	poem := repeatLines("دوست دارم دوست دارم دوست دارم", 9) + "\nlatin line"

	_, err := Analyze(poem)
	require.Error(t, err)

	cliErr, ok := err.(*model.CLIError)
	require.True(t, ok, "expected a CLIError")
	assert.Equal(t, model.ExitBadScript, cliErr.Code)
}

// TestAssessFile runs the full assessment end to end on a synthetic
// poem whose verdict is fully determined: long meter, long first
// syllable, short second syllable, suggesting ramal.
func TestAssessFile(t *testing.T) {
	poem := repeatLines("دوست دارم دوست دارم دوست دارم", 10)
	path := filepath.Join(t.TempDir(), "21.txt")
	require.NoError(t, os.WriteFile(path, []byte(poem+"\n"), 0o644))

	report, err := AssessFile(path)
	require.NoError(t, err)

	assert.Contains(t, report, "*** Assessing the following hemistichs ***")
	assert.Contains(t, report, "*** Meter length ***")
	assert.Contains(t, report, "Average letters per hemistich: 24.0")
	assert.Contains(t, report, "The meter appears to be long (muṡamman).")
	assert.Contains(t, report, "*** First syllable length ***")
	assert.Contains(t, report, "Indications of a long first syllable: 10 (at 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)")
	assert.Contains(t, report, "The first syllable in this meter appears to be long.")
	assert.Contains(t, report, "*** Second syllable length ***")
	assert.Contains(t, report, "The second syllable in this meter appears to be short.")
	assert.Contains(t, report, "*** Overall assessment ***")
	assert.Contains(t, report, "Long meter, long first syllable, short second syllable?")
	assert.Contains(t, report, "Consider ramal.")
}

// TestAssessFileTooShort verifies that the preprocessing error surfaces
// through AssessFile.
func TestAssessFileTooShort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.txt")
	require.NoError(t, os.WriteFile(path, []byte("الف\nب\n"), 0o644))

	_, err := AssessFile(path)
	require.Error(t, err)

	cliErr, ok := err.(*model.CLIError)
	require.True(t, ok, "expected a CLIError")
	assert.Equal(t, model.ExitPoemTooShort, cliErr.Code)
}
