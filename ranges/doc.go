// Package ranges provides closed ranges, stepped progressions and clamping
// helpers over the primitive numeric domains.
//
// Integral ranges ([IntRange], [LongRange], [CharRange]) are progressions with
// a step of one. Floating point ranges compare their bounds with IEEE-754 `<=`
// so that NaN is never contained, while [ComparableRange] orders values with
// [cmp.Compare]. All values are immutable and safe for concurrent use.
package ranges
