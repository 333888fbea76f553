package classify

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountCandidate is one numeric token pulled out of a message: its parsed
// value, the character offset of the match, and the raw matched token.
type AmountCandidate struct {
	Value       decimal.Decimal
	SourceIndex int
	RawToken    string
}

var (
	// A number anchored to a currency marker on either side, e.g.
	// "rs 1,250.00" or "500npr". Optional thousands separators and a
	// fraction of at most two digits.
	currencyAnchoredRe = regexp.MustCompile(`(?:rs\.?|inr|npr|₹|रु)\s*([\d,]+(?:\.\d{1,2})?)|([\d,]+(?:\.\d{1,2})?)\s*(?:rs\.?|inr|npr|₹|रु)`)

	// A number labeled by the word "amount", e.g. "amount is 1500".
	labeledAmountRe = regexp.MustCompile(`amount\s*(?:is|:)?\s*([\d,]+(?:\.\d{1,2})?)`)

	numberTokenRe    = regexp.MustCompile(`[\d,]+(?:\.\d{1,2})?`)
	currencyMarkerRe = regexp.MustCompile(`rs\.?|inr|npr|₹|रु`)
	amountLabelRe    = regexp.MustCompile(`\b(of|amount|amt)\b`)
)

// Scoring weights for the generic-number fallback.
const (
	weightDecimalPoint  = 50.0 // a fraction strongly indicates money, not an ID
	weightDigitBase     = 20.0 // shorter numbers score higher
	weightCurrencyNear  = 40.0 // currency marker within the window
	weightAmountLabel   = 30.0 // "of"/"amount"/"amt" just before the token
	weightProximityBase = 20.0 // per-keyword, decays with distance
	proximityWindow     = 15
	proximityDivisor    = 5.0
)

// ExtractAmount locates the monetary figure in a lowercased message. The
// three strategies run in strict priority order: currency-anchored match,
// "amount"-labeled match, then scored generic-number fallback. Returns false
// when no plausible amount exists or the chosen token does not parse.
func (v Vocabulary) ExtractAmount(lowered string) (AmountCandidate, bool) {
	if m := currencyAnchoredRe.FindStringSubmatchIndex(lowered); m != nil {
		tok := submatch(lowered, m, 1)
		if tok == "" {
			tok = submatch(lowered, m, 2)
		}
		return candidateFromToken(tok, m[0])
	}

	if m := labeledAmountRe.FindStringSubmatchIndex(lowered); m != nil {
		return candidateFromToken(submatch(lowered, m, 1), m[0])
	}

	return v.scoredFallback(lowered)
}

// scoredFallback collects every numeric token, filters out phone-number and
// account-number shaped tokens, and picks the highest-scoring survivor.
func (v Vocabulary) scoredFallback(lowered string) (AmountCandidate, bool) {
	locs := numberTokenRe.FindAllStringIndex(lowered, -1)
	if len(locs) == 0 {
		return AmountCandidate{}, false
	}

	type token struct {
		text  string
		index int
	}
	all := make([]token, 0, len(locs))
	for _, loc := range locs {
		all = append(all, token{text: lowered[loc[0]:loc[1]], index: loc[0]})
	}

	// Plausible amounts carry a decimal point or fewer than 7 digits;
	// anything longer looks like a phone or reference number. If the
	// filter removes everything, fall back to the full list.
	candidates := make([]token, 0, len(all))
	for _, t := range all {
		if strings.Contains(t.text, ".") || digitCount(t.text) < 7 {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		candidates = all
	}

	best := candidates[0]
	bestScore := v.ScoreCandidate(lowered, best.text, best.index)
	for _, t := range candidates[1:] {
		if s := v.ScoreCandidate(lowered, t.text, t.index); s > bestScore {
			best, bestScore = t, s
		}
	}

	return candidateFromToken(best.text, best.index)
}

// ScoreCandidate rates one numeric token as a potential amount. Higher is
// more amount-like. Ties are broken by the caller keeping the leftmost token.
func (v Vocabulary) ScoreCandidate(lowered, tok string, index int) float64 {
	var score float64

	if strings.Contains(tok, ".") {
		score += weightDecimalPoint
	}
	if d := float64(digitCount(tok)); d < weightDigitBase {
		score += weightDigitBase - d
	}

	before := lowered[max(0, index-proximityWindow):index]
	after := lowered[index:min(len(lowered), index+proximityWindow)]
	if currencyMarkerRe.MatchString(before + after) {
		score += weightCurrencyNear
	}
	if amountLabelRe.MatchString(before) {
		score += weightAmountLabel
	}

	for _, kw := range v.proximityKeywords() {
		kwIdx := strings.Index(lowered, kw)
		if kwIdx < 0 {
			continue
		}
		dist := float64(index - kwIdx)
		if dist < 0 {
			dist = -dist
		}
		if s := weightProximityBase - dist/proximityDivisor; s > 0 {
			score += s
		}
	}

	return score
}

func candidateFromToken(tok string, index int) (AmountCandidate, bool) {
	cleaned := strings.ReplaceAll(tok, ",", "")
	if cleaned == "" {
		return AmountCandidate{}, false
	}
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return AmountCandidate{}, false
	}
	return AmountCandidate{Value: value, SourceIndex: index, RawToken: tok}, true
}

func submatch(s string, m []int, group int) string {
	if m[2*group] < 0 {
		return ""
	}
	return s[m[2*group]:m[2*group+1]]
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
