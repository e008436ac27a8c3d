// Package filter parses nutrient range rules.
//
// A rule is exactly three tokens separated by single spaces:
//
//	<attribute> <comparator> <value>
//
// for example "calories >= 100" or "protein == 0". The attribute is
// lower-cased, the comparator must be one of "<=", "==" or ">=", and the
// value must be a finite, non-negative number.
//
// Parse does not check the attribute against any attribute set; callers
// decide which attributes they index.
package filter
