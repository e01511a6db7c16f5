package counting

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/theodore-s-beers/hemistich/internal/model"
)

// DefaultWarnThreshold is the non-empty line count above which a file is
// flagged as unusually long. A ghazal rarely exceeds 14 couplets, so more
// than 28 hemistichs deserves a second look (the result is unaffected).
const DefaultWarnThreshold = 28

// CountHemistichs counts the lines of r that are non-empty after trimming
// surrounding whitespace. Blank separator lines and whitespace-only lines
// contribute nothing, so an empty or all-whitespace stream counts as zero.
func CountHemistichs(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	total := 0
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			total++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return total, nil
}

// CountCouplets opens the file at path, counts its hemistichs, validates
// that they pair evenly, and returns the couplet count (hemistichs / 2).
//
// An odd hemistich count is a structural error: the returned CLIError
// names the file and the offending count, and carries ExitOddHemistichs
// so the whole run aborts. When the count exceeds warnThreshold, a notice
// is written to warnOut and processing continues; the result value is
// unaffected.
//
// The file handle is scoped to this call and released on every path,
// including validation failure.
func CountCouplets(path string, warnThreshold int, warnOut io.Writer) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to open %s", path), err)
	}
	defer func() { _ = f.Close() }()

	total, err := CountHemistichs(f)
	if err != nil {
		return 0, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to read %s", path), err)
	}

	if total%2 != 0 {
		return 0, model.NewCLIError(model.ExitOddHemistichs,
			fmt.Sprintf("File %s has an odd number of hemistichs: %d", path, total))
	}

	if total > warnThreshold {
		fmt.Fprintf(warnOut, "File %s has a large number of hemistichs: %d\n", path, total)
	}

	return total / 2, nil
}
