package meter

import (
	"fmt"
	"strconv"
	"strings"
)

// joinLocations renders hemistich numbers as "1, 4, 12" for the marker
// report lines.
func joinLocations(locs []int) string {
	parts := make([]string, len(locs))
	for i, n := range locs {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

// AssessLength classifies the meter as long or short from the average
// letter count per hemistich and appends the meter-length section to the
// report. Hemistichs beyond MaxHemistichs were not counted, so the
// divisor is capped to match.
func (a *Analysis) AssessLength(totalHemistichs int) {
	assessed := totalHemistichs
	if assessed > MaxHemistichs {
		assessed = MaxHemistichs
	}
	avgLetters := float64(a.TotalLetters) / float64(assessed)

	a.report.WriteString("*** Meter length ***\n")
	fmt.Fprintf(&a.report, "Average letters per hemistich: %.1f\n", avgLetters)

	switch {
	case avgLetters >= 23.5:
		a.LongMeter = true
		a.report.WriteString("The meter appears to be long (muṡamman).\n")
	case avgLetters >= 22.5:
		a.LongMeter = true
		a.report.WriteString("The meter appears to be long (muṡamman).\n")
		a.report.WriteString("(But this is pretty short for a long meter!)\n")
	case avgLetters >= 21.0:
		a.ShortMeter = true
		a.report.WriteString("The meter appears to be short (musaddas; or mutaqārib muṡamman).\n")
		a.report.WriteString("(But this is pretty long for a short meter!)\n")
	default:
		a.ShortMeter = true
		a.report.WriteString("The meter appears to be short (musaddas; or mutaqārib muṡamman).\n")
	}
}

// AssessFirstSyllable weighs the tallied first-syllable markers and
// appends the first-syllable section to the report. Returns the verdict
// as (long, short); both false means indeterminate.
func (a *Analysis) AssessFirstSyllable() (longFirst, shortFirst bool) {
	s := &a.Syllables
	a.report.WriteString("*** First syllable length ***\n")

	if s.LongFirstMarkers > 0 {
		fmt.Fprintf(&a.report, "Indications of a long first syllable: %d (at %s)\n",
			s.LongFirstMarkers, joinLocations(s.LongFirstLocations))
	}
	if s.ShortFirstMarkers > 0 {
		fmt.Fprintf(&a.report, "Indications of a short first syllable: %d (at %s)\n",
			s.ShortFirstMarkers, joinLocations(s.ShortFirstLocations))
	}

	switch {
	case s.LongFirstMarkers > 0 && s.ShortFirstMarkers > 0:
		a.report.WriteString("There are contradictory indications of a long vs. short first syllable.\n")
		a.report.WriteString("If this is not an error, it suggests that the meter is probably ramal.\n")
	case s.LongFirstMarkers > 1:
		longFirst = true
		a.report.WriteString("The first syllable in this meter appears to be long.\n")
	case s.ShortFirstMarkers > 1:
		shortFirst = true
		a.report.WriteString("The first syllable in this meter appears to be short.\n")
	default:
		a.report.WriteString("Insufficient evidence (< 2) of a long vs. short first syllable…\n")
		a.report.WriteString("(It's easier to detect short syllables. Scant results may suggest long.)\n")
	}

	return longFirst, shortFirst
}

// AssessSecondSyllable weighs the tallied second-syllable markers and
// appends the second-syllable section to the report. Returns the verdict
// as (long, short); both false means indeterminate.
func (a *Analysis) AssessSecondSyllable() (longSecond, shortSecond bool) {
	s := &a.Syllables
	a.report.WriteString("*** Second syllable length ***\n")

	if s.LongSecondMarkers > 0 {
		fmt.Fprintf(&a.report, "Suggestions of a long second syllable: %d (at %s)\n",
			s.LongSecondMarkers, joinLocations(s.LongSecondLocations))
		if s.LongSecondMarkers == 1 {
			a.report.WriteString("(Be careful with this; one result is not much.)\n")
		}
	}
	if s.ShortSecondMarkers > 0 {
		fmt.Fprintf(&a.report, "Suggestions of a short second syllable: %d (at %s)\n",
			s.ShortSecondMarkers, joinLocations(s.ShortSecondLocations))
		if s.ShortSecondMarkers == 1 {
			a.report.WriteString("(Be careful with this; one result is not much.)\n")
		}
	}

	switch {
	case s.LongSecondMarkers > 0 && s.ShortSecondMarkers > 0:
		a.report.WriteString("There are contradictory indications of a long vs. short second syllable.\n")
	case s.LongSecondMarkers > 1:
		longSecond = true
		a.report.WriteString("The second syllable in this meter appears to be long.\n")
	case s.ShortSecondMarkers > 1:
		shortSecond = true
		a.report.WriteString("The second syllable in this meter appears to be short.\n")
	default:
		a.report.WriteString("Insufficient evidence (< 2) of a long vs. short second syllable…\n")
	}

	return longSecond, shortSecond
}

// AssessOverall combines the meter-length and syllable verdicts into the
// final named-meter suggestions and appends them to the report.
func (a *Analysis) AssessOverall(longFirst, shortFirst, longSecond, shortSecond bool) {
	a.report.WriteString("*** Overall assessment ***\n")

	switch {
	case a.LongMeter:
		switch {
		case longFirst:
			switch {
			case longSecond:
				a.report.WriteString("Long meter, long first syllable, long second syllable?\n")
				a.report.WriteString("Consider, with short third and fourth syllables, hazaj (akhrab).\n")
				a.report.WriteString("Consider, with a long fourth syllable, mużāri‘.\n")
			case shortSecond:
				a.report.WriteString("Long meter, long first syllable, short second syllable?\n")
				a.report.WriteString("Consider ramal.\n")
			default:
				a.report.WriteString("Long meter, long first syllable, indeterminate second syllable?\n")
				a.report.WriteString("Consider, with a long second syllable, hazaj (akhrab) or mużāri‘.\n")
				a.report.WriteString("Consider, with a short second syllable, ramal.\n")
			}
		case shortFirst:
			switch {
			case longSecond:
				a.report.WriteString("Long meter, short first syllable, long second syllable?\n")
				a.report.WriteString("Consider, with a long third syllable, hazaj (sālim).\n")
				a.report.WriteString("Consider, with a short third syllable, mujtaṡṡ.\n")
			case shortSecond:
				a.report.WriteString("Long meter, short first syllable, short second syllable?\n")
				a.report.WriteString("Consider ramal.\n")
			default:
				a.report.WriteString("Long meter, short first syllable, indeterminate second syllable?\n")
				a.report.WriteString("Consider, with a long second syllable, hazaj (sālim) or mujtaṡṡ.\n")
				a.report.WriteString("Consider, with a short second syllable, ramal.\n")
			}
		default:
			a.report.WriteString("What is clearest is that the meter appears to be long.\n")
			a.report.WriteString("If there were mixed signals about the first syllable, consider ramal.\n")
		}
	case a.ShortMeter:
		switch {
		case longFirst:
			switch {
			case longSecond:
				a.report.WriteString("Short meter, long first syllable, long second syllable?\n")
				a.report.WriteString("Consider hazaj (akhrab).\n")
			case shortSecond:
				a.report.WriteString("Short meter, long first syllable, short second syllable?\n")
				a.report.WriteString("Consider, with a long third syllable, ramal or khafīf.\n")
				a.report.WriteString("If the third syllable is short, enjoy the puzzle!\n")
			default:
				a.report.WriteString("Short meter, long first syllable, indeterminate second syllable?\n")
				a.report.WriteString("Consider, with a long second syllable, hazaj (akhrab).\n")
				a.report.WriteString("Consider, with a short second syllable, ramal or khafīf.\n")
			}
		case shortFirst:
			switch {
			case longSecond:
				a.report.WriteString("Short meter, short first syllable, long second syllable?\n")
				a.report.WriteString("Consider hazaj or mutaqārib.\n")
			case shortSecond:
				a.report.WriteString("Short meter, short first syllable, short second syllable?\n")
				a.report.WriteString("This would be rare. Consider ramal or khafīf.\n")
			default:
				a.report.WriteString("Short meter, short first syllable, indeterminate second syllable?\n")
				a.report.WriteString("Consider, with a long second syllable, hazaj or mutaqārib.\n")
				a.report.WriteString("Consider, with a short second syllable, ramal or khafīf.\n")
			}
		default:
			a.report.WriteString("What is clearest is that the meter appears to be short.\n")
			a.report.WriteString("Were there mixed signals about the first syllable?\n")
			a.report.WriteString("If so, consider ramal or khafīf.\n")
		}
	default:
		// Unreachable today: AssessLength always picks a side. Kept for
		// a possible future indeterminate band.
		a.report.WriteString("With the meter length unclear, no further conclusions will be drawn.\n")
	}
}
