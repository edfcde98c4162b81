package directory

import "strings"

// Filter returns the doctors whose name or specialization contains the query,
// case-insensitively. An empty or whitespace-only query returns the input
// unchanged. Relative order is preserved.
func Filter(doctors []*Doctor, query string) []*Doctor {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return doctors
	}
	out := make([]*Doctor, 0, len(doctors))
	for _, d := range doctors {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Specialization), q) {
			out = append(out, d)
		}
	}
	return out
}
