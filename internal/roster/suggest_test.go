package roster

import "testing"

func sampleStudents() []Student {
	return []Student{
		{ID: "s1", FullName: "Anna Cruz", Strand: "STEM", Grade: "Grade 12"},
		{ID: "s2", FullName: "Juan Dela Cruz", Strand: "ABM", Grade: "Grade 11"},
		{ID: "s3", FullName: "Mark Reyes", Strand: "HUMSS", Grade: "Grade 12"},
	}
}

func TestSuggest_SubstringCaseInsensitive(t *testing.T) {
	got := Suggest(sampleStudents(), "an")

	want := []string{"Anna Cruz", "Juan Dela Cruz"}
	if len(got) != len(want) {
		t.Fatalf("expected %d suggestions, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].FullName != name {
			t.Errorf("suggestion %d: got %q, want %q", i, got[i].FullName, name)
		}
	}
}

func TestSuggest_UpperCaseQuery(t *testing.T) {
	got := Suggest(sampleStudents(), "CRUZ")
	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(got))
	}
}

func TestSuggest_BlankQuery(t *testing.T) {
	if got := Suggest(sampleStudents(), ""); got != nil {
		t.Errorf("empty query should return nil, got %v", got)
	}
	if got := Suggest(sampleStudents(), "   "); got != nil {
		t.Errorf("whitespace query should return nil, got %v", got)
	}
}

func TestSuggest_NoMatches(t *testing.T) {
	if got := Suggest(sampleStudents(), "zzz"); len(got) != 0 {
		t.Errorf("expected no suggestions, got %v", got)
	}
}

func TestFindByName(t *testing.T) {
	students := sampleStudents()

	s, ok := FindByName(students, "  juan dela cruz ")
	if !ok {
		t.Fatal("expected to find student by case-insensitive name")
	}
	if s.ID != "s2" {
		t.Errorf("got student %s, want s2", s.ID)
	}

	if _, ok := FindByName(students, "Juan"); ok {
		t.Error("partial name must not resolve a student")
	}
}
