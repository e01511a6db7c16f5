// Package meter implements a heuristic meter assessment for a ghazal in
// Persian/Arabic script.
//
// The approach is lexical rather than phonological: each hemistich is
// first reconstructed into a normalized consonant/long-vowel skeleton
// (hamzah variants folded, diacritics and punctuation dropped, ZWNJ
// treated as a space). From the skeletons the analyzer derives:
//
//   - meter length, from the average letter count per hemistich (long
//     meters run noticeably longer than short ones);
//   - first- and second-syllable length, from tables of common opening
//     words and particles whose scansion is known ("az", "har", "bih",
//     "kih", "chunīn", …).
//
// The final report combines the three signals into suggestions among the
// common Persian meters (hazaj, ramal, mużāri‘, mujtaṡṡ, mutaqārib,
// khafīf). It is an aid for a human reader, not a definitive scansion.
package meter
