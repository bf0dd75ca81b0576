package geocode

import "strings"

const detectedPlaceholder = "Location detected"

// PrimaryLabel is the first display line: the water body when known, otherwise the
// place and state, otherwise a generic placeholder.
func (l CanonicalLocation) PrimaryLabel() string {
	if l.WaterName != nil {
		return *l.WaterName
	}

	if place := l.place(); place != "" {
		return joinPresent(place, deref(l.State))
	}

	return detectedPlaceholder
}

// SecondaryLabel is the "place, state" line shown under a water body name.
func (l CanonicalLocation) SecondaryLabel() (string, bool) {
	if l.WaterName == nil {
		return "", false
	}

	line := joinPresent(l.place(), deref(l.State))
	return line, line != ""
}

// place prefers the city tier and falls back to the county.
func (l CanonicalLocation) place() string {
	if l.City != nil {
		return *l.City
	}
	return deref(l.County)
}

func joinPresent(parts ...string) string {
	present := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, ", ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
