package meter

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/theodore-s-beers/hemistich/internal/model"
)

// blankLines matches runs of two or more newlines, i.e. one or more blank
// separator lines between couplets.
var blankLines = regexp.MustCompile(`\n{2,}`)

// LoadPoem reads the poem file at path, rejecting files larger than
// MaxFileSize bytes before reading them.
func LoadPoem(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("Failed to read file metadata for '%s'", path), err)
	}

	if info.Size() > MaxFileSize {
		return "", model.NewCLIError(model.ExitFileTooLarge,
			fmt.Sprintf("File '%s' is too large (%d bytes). Maximum allowed size is %d bytes.",
				path, info.Size(), MaxFileSize))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("Failed to read file '%s'", path), err)
	}
	return string(data), nil
}

// Preprocess trims the poem and collapses blank-line runs, yielding one
// hemistich per line. Poems with fewer than MinHemistichs lines carry too
// little signal and are rejected.
func Preprocess(poem string) (string, error) {
	normalized := strings.ReplaceAll(poem, "\r\n", "\n")
	trimmed := blankLines.ReplaceAllString(strings.TrimSpace(normalized), "\n")

	lineCount := len(strings.Split(trimmed, "\n"))
	if trimmed == "" {
		lineCount = 0
	}
	if lineCount < MinHemistichs {
		return "", model.NewCLIError(model.ExitPoemTooShort,
			fmt.Sprintf("Poem is too short. Found %d hemistichs; at least %d are required.",
				lineCount, MinHemistichs))
	}

	return trimmed, nil
}

// Analyze reconstructs and assesses each hemistich of the preprocessed
// poem (at most MaxHemistichs of them), tallying letter counts and
// syllable markers and echoing the reconstructed lines into the report.
func Analyze(poem string) (*Analysis, error) {
	a := &Analysis{}
	a.report.WriteString("*** Assessing the following hemistichs ***\n")

	hemistichs := strings.Split(poem, "\n")
	for i, hem := range hemistichs {
		if i >= MaxHemistichs {
			break
		}
		hemNo := i + 1

		skeleton, err := Reconstruct(hem)
		if err != nil {
			return nil, err
		}
		nospace := StripSpaces(skeleton)

		fmt.Fprintf(&a.report, "%d: %s\n", hemNo, string(skeleton))
		a.TotalLetters += len(nospace)

		analyzeSyllables(skeleton, nospace, hemNo, &a.Syllables)
	}

	return a, nil
}

// analyzeSyllables runs the syllable rules for one hemistich and records
// any markers found.
func analyzeSyllables(skel, nospace []rune, hemNo int, s *SyllableAnalysis) {
	if longFirstSyllable(skel) {
		s.AddLongFirst(hemNo)
	}
	if shortFirstSyllable(skel) {
		s.AddShortFirst(hemNo)
	}
	if longSecondSyllable(skel) {
		s.AddLongSecond(hemNo)
	}
	if shortSecondSyllable(skel, nospace) {
		s.AddShortSecond(hemNo)
	}

	// Opening words that pin down both of the first two syllables at once
	switch initialClues(skel) {
	case "kasi", "yaki":
		s.AddShortFirst(hemNo)
		s.AddLongSecond(hemNo)
	case "chist", "dust", "nist", "ham-chu", "kist":
		s.AddLongFirst(hemNo)
		s.AddShortSecond(hemNo)
	case "chandan":
		s.AddLongFirst(hemNo)
		s.AddLongSecond(hemNo)
	}
}

// AssessFile runs the full meter assessment for the poem at path and
// returns the report text.
func AssessFile(path string) (string, error) {
	poem, err := LoadPoem(path)
	if err != nil {
		return "", err
	}

	processed, err := Preprocess(poem)
	if err != nil {
		return "", err
	}

	analysis, err := Analyze(processed)
	if err != nil {
		return "", err
	}

	hemistichCount := len(strings.Split(processed, "\n"))
	analysis.AssessLength(hemistichCount)

	longFirst, shortFirst := analysis.AssessFirstSyllable()
	longSecond, shortSecond := analysis.AssessSecondSyllable()
	analysis.AssessOverall(longFirst, shortFirst, longSecond, shortSecond)

	return analysis.Report(), nil
}
