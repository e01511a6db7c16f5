package meter

import "strings"

// Limits on the input poem. Files larger than MaxFileSize bytes are
// rejected outright; poems with fewer than MinHemistichs lines carry too
// little signal to assess; only the first MaxHemistichs lines are read.
const (
	MaxFileSize   = 10_000
	MinHemistichs = 10
	MaxHemistichs = 40
)

// Analysis accumulates the results of assessing one poem.
type Analysis struct {
	// LongMeter and ShortMeter record the meter-length classification.
	// Exactly one is set once AssessLength has run.
	LongMeter  bool
	ShortMeter bool

	// TotalLetters is the letter count summed over the assessed
	// hemistichs (spaces excluded).
	TotalLetters int

	// Syllables holds the per-syllable marker tallies.
	Syllables SyllableAnalysis

	// report collects the human-readable assessment as it is built.
	report strings.Builder
}

// Report returns the accumulated assessment text.
func (a *Analysis) Report() string {
	return a.report.String()
}

// SyllableAnalysis tallies indications of long vs. short first and second
// syllables, with the hemistich numbers where each indication was found.
type SyllableAnalysis struct {
	LongFirstMarkers   int
	LongFirstLocations []int

	ShortFirstMarkers   int
	ShortFirstLocations []int

	LongSecondMarkers   int
	LongSecondLocations []int

	ShortSecondMarkers   int
	ShortSecondLocations []int
}

// AddLongFirst records an indication of a long first syllable at the
// given hemistich number.
func (s *SyllableAnalysis) AddLongFirst(hemNo int) {
	s.LongFirstMarkers++
	s.LongFirstLocations = append(s.LongFirstLocations, hemNo)
}

// AddShortFirst records an indication of a short first syllable.
func (s *SyllableAnalysis) AddShortFirst(hemNo int) {
	s.ShortFirstMarkers++
	s.ShortFirstLocations = append(s.ShortFirstLocations, hemNo)
}

// AddLongSecond records an indication of a long second syllable.
func (s *SyllableAnalysis) AddLongSecond(hemNo int) {
	s.LongSecondMarkers++
	s.LongSecondLocations = append(s.LongSecondLocations, hemNo)
}

// AddShortSecond records an indication of a short second syllable.
func (s *SyllableAnalysis) AddShortSecond(hemNo int) {
	s.ShortSecondMarkers++
	s.ShortSecondLocations = append(s.ShortSecondLocations, hemNo)
}
