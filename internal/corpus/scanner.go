package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/theodore-s-beers/hemistich/internal/model"
)

// ListDir returns the paths of files in dir whose names match pattern
// (a filepath.Match glob such as "*.txt"), ordered for processing.
//
// Returns a CLIError with ExitDirNotFound when dir does not exist or is
// not a directory. This check runs before any counting, so a missing
// directory aborts the run with no partial results.
func ListDir(dir, pattern string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, model.NewCLIError(model.ExitDirNotFound,
			fmt.Sprintf("Directory %s does not exist", dir))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to read directory %s", dir), err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return nil, model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("invalid file pattern %q", pattern), err)
		}
		if matched {
			names = append(names, entry.Name())
		}
	}

	SortByStem(names)

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// SortByStem orders filenames by numeric stem ascending, with non-numeric
// stems after all numeric ones, alphabetically among themselves.
//
// This is an explicit comparator rather than a reliance on directory
// enumeration order, so results are deterministic across filesystems.
func SortByStem(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		ni, iNumeric := numericStem(names[i])
		nj, jNumeric := numericStem(names[j])
		switch {
		case iNumeric && jNumeric:
			if ni != nj {
				return ni < nj
			}
			return names[i] < names[j]
		case iNumeric:
			return true
		case jNumeric:
			return false
		default:
			return names[i] < names[j]
		}
	})
}

// numericStem reports whether the filename's stem is entirely decimal
// digits, and if so its integer value. "007.txt" parses as 7; "1a.txt"
// and "-1.txt" are non-numeric.
func numericStem(name string) (int, bool) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" {
		return 0, false
	}
	for _, r := range stem {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(stem)
	if err != nil {
		// Stem is all digits but overflows int; treat as non-numeric.
		return 0, false
	}
	return n, true
}
