package services

import "strings"

// The whole data model references groups, subgroups, items and parties by
// name, not by id. Every name comparison in the app goes through here so
// case and whitespace handling stays in one place.

// NormalizeName lowercases a name and collapses internal whitespace.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// NamesEqual reports whether two names refer to the same record.
func NamesEqual(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}

// CleanName trims a name for storage, keeping its original casing.
func CleanName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
