package roster

import "strings"

// Suggest returns students whose full name contains the query, case
// insensitive, in registration order. A blank query yields no suggestions.
func Suggest(students []Student, query string) []Student {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Student
	for _, s := range students {
		if strings.Contains(strings.ToLower(s.FullName), q) {
			out = append(out, s)
		}
	}
	return out
}

// FindByName resolves a student by exact full name, case insensitive. Used at
// login, where the typed name must match a registered student exactly.
func FindByName(students []Student, fullName string) (Student, bool) {
	want := strings.ToLower(strings.TrimSpace(fullName))
	for _, s := range students {
		if strings.ToLower(s.FullName) == want {
			return s, true
		}
	}
	return Student{}, false
}
