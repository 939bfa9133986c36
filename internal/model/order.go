package model

import "slices"

// SortNames sorts entry names in plain byte order, which is the sibling
// order GrandPerspective expects in a scan dump
func SortNames(names []string) {
	slices.Sort(names)
}
