// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package report

import "strings"

// Characters replaced in a sanitized name.
const reserved = " \t:.,;()[]'\""

// Sanitize returns a name that can be used
// as an unquoted newick label.
// Each run of spaces,
// colons,
// or other reserved characters
// is replaced by a single underscore.
func Sanitize(name string) string {
	f := strings.FieldsFunc(name, func(r rune) bool {
		return strings.ContainsRune(reserved, r)
	})
	return strings.Join(f, "_")
}

// Normalize returns the sanitized name in lower case.
// It is used to compare names
// with tree labels.
func Normalize(name string) string {
	return strings.ToLower(Sanitize(name))
}
