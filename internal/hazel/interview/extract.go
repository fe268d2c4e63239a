package interview

import (
	"regexp"
	"strings"
)

// Pattern families for company-name capture, tried in priority order.
var (
	// "my company name is X" / "brand is X"
	companyIsRe = regexp.MustCompile(`(?i)(?:my\s+)?(?:company|brand)\s+(?:name\s+)?(?:is|=|:)\s*["']?([A-Za-z0-9][A-Za-z0-9&.\- ]{0,59})`)
	// "my <word> is X" (tolerant to typos like "comonay")
	typoRe = regexp.MustCompile(`(?i)my\s+\w{3,14}\s+(?:name\s+)?(?:is|=|:)\s*["']?([A-Za-z0-9][A-Za-z0-9&.\- ]{0,59})`)
	// "we are X" / "our brand is X"
	weAreRe = regexp.MustCompile(`(?i)(?:we\s+are|our\s+(?:company|brand)\s+is)\s*["']?([A-Za-z0-9][A-Za-z0-9&.\- ]{0,59})`)

	// cut the candidate at punctuation or a connective clause
	clauseCutRe = regexp.MustCompile(`(?i)[,.\n\r]|\s+we\s+are\s+|\s+it'?s\s+|\s+its\s+`)
	punctCutRe  = regexp.MustCompile(`[,.\n\r]`)

	multiSpaceRe = regexp.MustCompile(`\s{2,}`)
)

// ExtractCompanyNameSoft pulls a company name out of free-form text even when
// the user types a whole sentence. Returns "" when nothing matches; the
// caller must treat that as no information gained, not an error.
func ExtractCompanyNameSoft(raw string) string {
	t := strings.TrimSpace(raw)
	if t == "" {
		return ""
	}

	if m := companyIsRe.FindStringSubmatch(t); m != nil {
		if c := cleanCandidate(m[1], clauseCutRe); c != "" {
			return c
		}
	}

	if m := typoRe.FindStringSubmatch(t); m != nil {
		if c := cleanCandidate(m[1], clauseCutRe); c != "" {
			return c
		}
	}

	if m := weAreRe.FindStringSubmatch(t); m != nil {
		if c := cleanCandidate(m[1], punctCutRe); c != "" {
			return c
		}
	}

	// short input like "Typo" / "Breadbox": take the whole thing
	words := strings.Fields(t)
	if len(words) >= 1 && len(words) <= 3 {
		whole := strings.Join(words, " ")
		if len(whole) <= 60 {
			return whole
		}
	}

	return ""
}

func cleanCandidate(candidate string, cut *regexp.Regexp) string {
	if loc := cut.FindStringIndex(candidate); loc != nil {
		candidate = candidate[:loc[0]]
	}
	candidate = strings.TrimSpace(candidate)
	return multiSpaceRe.ReplaceAllString(candidate, " ")
}
