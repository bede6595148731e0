package core

import (
	"strconv"
	"strings"
)

// CompareVersions orders two version identifiers by semantic-version rules:
// the dotted numeric sequences are compared component-wise with missing
// trailing components treated as zero; on numeric equality an identifier
// without a pre-release suffix outranks one with a suffix; two suffixes
// compare lexicographically. Returns -1, 0 or 1.
func CompareVersions(a, b string) int {
	numA, sufA := splitVersion(a)
	numB, sufB := splitVersion(b)

	partsA := strings.Split(numA, ".")
	partsB := strings.Split(numB, ".")
	length := max(len(partsA), len(partsB))
	for i := range length {
		valA := versionComponent(partsA, i)
		valB := versionComponent(partsB, i)
		if valA != valB {
			if valA < valB {
				return -1
			}
			return 1
		}
	}

	// Numerically equal; a release without suffix supersedes a pre-release.
	switch {
	case sufA == "" && sufB == "":
		return 0
	case sufA == "":
		return 1
	case sufB == "":
		return -1
	default:
		return strings.Compare(sufA, sufB)
	}
}

// splitVersion separates the dotted numeric sequence from an optional
// pre-release suffix (everything after the first hyphen).
func splitVersion(v string) (numeric, suffix string) {
	numeric, suffix, _ = strings.Cut(v, "-")
	return numeric, suffix
}

// versionComponent returns the numeric value of component i, with missing or
// non-numeric components treated as zero.
func versionComponent(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(parts[i])
	if err != nil {
		return 0
	}
	return n
}
