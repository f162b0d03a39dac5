// Package normalization maps heterogeneous raw score scales onto a
// common 0-100 range for radar charting. Ranges are live, per-field
// session configuration: edits take effect on the next Normalize call.
package normalization
