// Package textutil provides the text processing primitives behind title
// matching: canonical normalization and sequence-based similarity.
//
// Normalization strips diacritics via canonical decomposition, discards
// everything outside lowercase ASCII letters and digits, and collapses
// separator runs to single spaces. The result is stable: normalizing a
// normalized string returns it unchanged.
//
// Similarity follows the classic longest-matching-block recursion, producing
// a ratio in [0,1] of matched characters to total length.
package textutil
