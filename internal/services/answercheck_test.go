package services

import "testing"

func TestAnswerCheck(t *testing.T) {
	checker := NewAnswerChecker()

	testCases := []struct {
		name      string
		given     string
		canonical string
		want      bool
	}{
		{"exact", "Abraham Lincoln", "Abraham Lincoln", true},
		{"case insensitive", "abraham lincoln", "Abraham Lincoln", true},
		{"question form", "Who is Abraham Lincoln?", "Abraham Lincoln", true},
		{"what is prefix", "what is the Nile", "the Nile", true},
		{"leading article dropped", "Great Gatsby", "The Great Gatsby", true},
		{"article on given side", "the Nile", "Nile", true},
		{"punctuation ignored", "OKeeffe", "O'Keeffe", true},
		{"hyphen as space", "Port au Prince", "Port-au-Prince", true},
		{"small typo tolerated", "Mississipi", "Mississippi", true},
		{"two typos on long answer", "Arnold Schwarzeneger", "Arnold Schwarzenegger", true},
		{"short answers get no slack", "ore", "or", false},
		{"wrong answer", "Thomas Jefferson", "Abraham Lincoln", false},
		{"empty given", "", "Abraham Lincoln", false},
		{"parenthetical alternative", "Bill Clinton", "William (Bill) Clinton", true},
		{"base form without parens", "William Clinton", "William (Bill) Clinton", true},
		{"or alternative", "vole", "a mole (or vole)", true},
		{"band with article kept", "The Who", "The Who", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := checker.Check(tc.given, tc.canonical)
			if got != tc.want {
				t.Errorf("Check(%q, %q) = %v, want %v", tc.given, tc.canonical, got, tc.want)
			}
		})
	}
}

func TestNormalizeAnswer(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"  The Great Gatsby ", "great gatsby"},
		{"What is a llama?", "llama"},
		{"O'Keeffe", "okeeffe"},
		{"the", "the"},
	}

	for _, tc := range testCases {
		if got := normalizeAnswer(tc.in); got != tc.want {
			t.Errorf("normalizeAnswer(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	testCases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"mississippi", "mississipi", 1},
	}

	for _, tc := range testCases {
		if got := levenshtein(tc.a, tc.b); got != tc.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
