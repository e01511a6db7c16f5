// Package counting measures one ghazal file: it counts non-empty lines,
// validates that they pair into couplets, and warns about unusually long
// poems.
//
// A ghazal is written one hemistich (half-line) per text line, with blank
// lines separating couplets. The number of non-empty lines must therefore
// be even; an odd count means the file is structurally broken and the
// whole run aborts rather than risk a silent miscount.
package counting
