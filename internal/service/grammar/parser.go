package grammar

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/grammar-assistant/internal/domain"
)

// MarkerContractVersion identifies the set of section markers shared by
// SentenceAnalysisPrompt and ParseSentenceAnalysis. Bump it whenever either
// side changes.
const MarkerContractVersion = "1"

const (
	markerCorrected   = "**Corrected sentence:**"
	markerScore       = "**Grammar score:**"
	markerExplanation = "**Explanation:**"
)

// Corrected and score take the rest of the marker's line; explanation runs to
// the end of the text.
var (
	correctedRe   = regexp.MustCompile(regexp.QuoteMeta(markerCorrected) + `[ \t]*(?P<corrected>[^\n]*)`)
	scoreRe       = regexp.MustCompile(regexp.QuoteMeta(markerScore) + `[ \t]*(?P<score>[^\n]*)`)
	explanationRe = regexp.MustCompile(`(?s)` + regexp.QuoteMeta(markerExplanation) + `\s*(?P<explanation>.*)`)
)

const correctedTextPreamble = "Here is the corrected text:"

// ParseSentenceAnalysis extracts the three marked sections from raw model
// output. A missing section yields an empty string; it never fails.
func ParseSentenceAnalysis(raw string) domain.SentenceAnalysis {
	a, _ := parse(raw)
	return a
}

// ParseSentenceAnalysisStrict is like ParseSentenceAnalysis but reports a
// FailureMalformedResponse naming every marker that was not found.
func ParseSentenceAnalysisStrict(raw string) (domain.SentenceAnalysis, error) {
	a, missing := parse(raw)
	if len(missing) > 0 {
		return domain.SentenceAnalysis{}, domain.NewCompletionError(
			domain.FailureMalformedResponse,
			"missing markers "+strings.Join(missing, ", "),
			nil,
		)
	}
	return a, nil
}

func parse(raw string) (domain.SentenceAnalysis, []string) {
	var missing []string

	section := func(re *regexp.Regexp, marker, group string) string {
		m := re.FindStringSubmatch(raw)
		if m == nil {
			missing = append(missing, marker)
			return ""
		}
		return strings.TrimSpace(m[re.SubexpIndex(group)])
	}

	return domain.SentenceAnalysis{
		Corrected:   section(correctedRe, markerCorrected, "corrected"),
		Score:       section(scoreRe, markerScore, "score"),
		Explanation: section(explanationRe, markerExplanation, "explanation"),
	}, missing
}

// ExtractFirstLine drops the "Here is the corrected text:" preamble wherever
// it appears and returns the first line of what is left.
//
// Anything after the first line break is discarded, so multi-line
// corrections lose their tail.
func ExtractFirstLine(raw string) string {
	s := strings.TrimSpace(strings.ReplaceAll(raw, correctedTextPreamble, ""))
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimRight(line, "\r")
}
