package services

import (
	"regexp"
	"strings"
	"unicode"
)

// AnswerChecker grades free-form trivia responses against the canonical
// answer. Matching is insensitive to case, punctuation, leading articles and
// question-form prefixes ("what is", "who are", ...), tolerates small typos,
// and accepts parenthesized alternatives from the canonical text.
type AnswerChecker struct{}

func NewAnswerChecker() *AnswerChecker {
	return &AnswerChecker{}
}

var answerPrefixes = []string{
	"what is", "what are", "whats", "what's",
	"who is", "who are", "whos", "who's",
	"where is", "where are",
}

var articles = map[string]bool{
	"a": true, "an": true, "the": true,
}

func (c *AnswerChecker) Check(given, canonical string) bool {
	g := normalizeAnswer(given)
	if g == "" {
		return false
	}

	for _, cand := range answerVariants(canonical) {
		if matchNormalized(g, cand) {
			return true
		}
	}
	return false
}

// answerVariants expands a canonical answer into its acceptable normalized
// forms. J-Archive answers often carry alternatives in parentheses:
// "William (Bill) Clinton", "a mole (or vole)".
func answerVariants(canonical string) []string {
	base := normalizeAnswer(stripParens(canonical))
	variants := []string{base}

	full := normalizeAnswer(canonical)
	if full != base {
		variants = append(variants, full)
	}

	for _, inner := range parenContents(canonical) {
		inner = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(inner), "or "))
		if n := normalizeAnswer(inner); n != "" {
			variants = append(variants, n)
		}
	}

	// "William (Bill) Clinton" also accepts "Bill Clinton": substitute the
	// parenthesized form for the word it annotates.
	if sub := parenAltRe.ReplaceAllString(canonical, "$2"); sub != canonical {
		if n := normalizeAnswer(sub); n != "" {
			variants = append(variants, n)
		}
	}
	return variants
}

var parenAltRe = regexp.MustCompile(`(\S+)\s*\(([^()]+)\)`)

func matchNormalized(given, want string) bool {
	if want == "" {
		return false
	}
	if given == want {
		return true
	}

	// Small typo tolerance, scaled to answer length. Short answers get no
	// slack so "ore" never matches "or".
	if len(want) >= 5 {
		limit := 1
		if len(want) >= 12 {
			limit = 2
		}
		if levenshtein(given, want) <= limit {
			return true
		}
	}
	return false
}

func normalizeAnswer(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	for _, p := range answerPrefixes {
		if strings.HasPrefix(s, p+" ") {
			s = strings.TrimPrefix(s, p+" ")
			break
		}
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '/':
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	out := words[:0]
	for i, w := range words {
		// Drop articles only in leading position; "The Who" still needs
		// its second word.
		if i == 0 && articles[w] && len(words) > 1 {
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

func stripParens(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func parenContents(s string) []string {
	var out []string
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			if depth == 0 {
				b.Reset()
			} else {
				b.WriteRune(r)
			}
			depth++
		case ')':
			depth--
			if depth == 0 {
				out = append(out, b.String())
			} else if depth > 0 {
				b.WriteRune(r)
			}
			if depth < 0 {
				depth = 0
			}
		default:
			if depth > 0 {
				b.WriteRune(r)
			}
		}
	}
	return out
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
