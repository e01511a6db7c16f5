// Package corpus handles enumeration of ghazal files in corpus directories.
//
// The core rule is the ordering comparator: filenames whose stem (name
// without extension) is a run of decimal digits sort first, in ascending
// numeric order, and all other filenames sort after them alphabetically.
// A corpus numbered 1.txt … 495.txt is therefore processed in poem order,
// with stray files such as abstract.txt trailing at the end.
//
// Each requested directory must exist before any file is counted; a
// missing directory aborts the entire run.
package corpus
