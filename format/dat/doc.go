// Package dat reads and writes timed signals in a two-column text format:
// one sample per line, time and amplitude separated by a tab.
//
//	0.000000	0.000000
//	0.010000	0.100000
//
// Readers accept any whitespace between the columns, skip blank lines and
// treat lines starting with '#' as comments.
package dat
