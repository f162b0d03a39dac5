// Package extraction discovers the repeating, period-indexed columns of
// a student record (semester GPA, yearly composite scores, scholarships,
// levels), orders them across mixed CJK/ASCII numeral notations and
// applies the shared missing-value policy.
//
// The column set is not fixed in advance: spreadsheets carry however
// many semesters and academic years they carry, and every column whose
// name matches a known pattern contributes. Unrecognized columns are
// ignored, never errors.
package extraction
