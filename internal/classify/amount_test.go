package classify

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestExtractAmount_CurrencyAnchored(t *testing.T) {
	v := DefaultVocabulary()

	tests := []struct {
		name  string
		text  string
		want  string
		token string
	}{
		{
			"npr prefix with separators",
			"your a/c xxxx1234 has been debited by npr 1,250.00 on 24-12-2025. available balance npr 5,000.00",
			"1250.00",
			"1,250.00",
		},
		{
			"rs with period",
			"your a/c credited with rs. 2,000.00 via neft. thank you.",
			"2000.00",
			"2,000.00",
		},
		{"rs plain", "khalti wallet load of rs 500 successful. ref: 12345", "500", "500"},
		{"suffix marker", "payment of 750npr completed", "750", "750"},
		{"rupee symbol", "spent ₹99.50 at store", "99.50", "99.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand, ok := v.ExtractAmount(tt.text)
			require.True(t, ok)
			assert.True(t, cand.Value.Equal(dec(tt.want)), "got %s", cand.Value)
			assert.Equal(t, tt.token, cand.RawToken)
		})
	}
}

func TestExtractAmount_FirstCurrencyMatchWins(t *testing.T) {
	v := DefaultVocabulary()
	// The balance figure comes second; extraction stops at the first
	// currency-anchored match.
	cand, ok := v.ExtractAmount("debited by npr 1,250.00. available balance npr 5,000.00")
	require.True(t, ok)
	assert.True(t, cand.Value.Equal(dec("1250.00")))
}

func TestExtractAmount_LabeledFallback(t *testing.T) {
	v := DefaultVocabulary()

	cand, ok := v.ExtractAmount("withdrawal complete, amount is 1500")
	require.True(t, ok)
	assert.True(t, cand.Value.Equal(dec("1500")))

	cand, ok = v.ExtractAmount("payment done, amount: 325.75")
	require.True(t, ok)
	assert.True(t, cand.Value.Equal(dec("325.75")))
}

func TestExtractAmount_ScoredFallback(t *testing.T) {
	v := DefaultVocabulary()

	// The long reference number is filtered out; the decimal token wins.
	cand, ok := v.ExtractAmount("paid 12345678 ref for grocery purchase of 450.50")
	require.True(t, ok)
	assert.True(t, cand.Value.Equal(dec("450.50")))

	// 10-digit phone number is excluded by the digit-count filter.
	cand, ok = v.ExtractAmount("topup done for 9801234567, 299 deducted")
	require.True(t, ok)
	assert.True(t, cand.Value.Equal(dec("299")))
}

func TestExtractAmount_UnfilteredFallback(t *testing.T) {
	v := DefaultVocabulary()
	// Every token looks like a reference number; the filter would empty the
	// set, so all tokens stay candidates and the shortest scores highest.
	cand, ok := v.ExtractAmount("moved 12345678 against 987654321")
	require.True(t, ok)
	assert.True(t, cand.Value.Equal(dec("12345678")))
}

func TestExtractAmount_TieKeepsFirst(t *testing.T) {
	v := DefaultVocabulary()
	cand, ok := v.ExtractAmount("codes 500 and 500 issued")
	require.True(t, ok)
	assert.Equal(t, 6, cand.SourceIndex)
}

func TestExtractAmount_NoNumbers(t *testing.T) {
	v := DefaultVocabulary()
	_, ok := v.ExtractAmount("hello there, nothing numeric here")
	assert.False(t, ok)

	_, ok = v.ExtractAmount("")
	assert.False(t, ok)
}

func TestExtractAmount_ZeroValue(t *testing.T) {
	v := DefaultVocabulary()
	// The extractor reports what it found; the engine rejects non-positive
	// values.
	cand, ok := v.ExtractAmount("payment of rs 0 done")
	require.True(t, ok)
	assert.True(t, cand.Value.IsZero())
}

func TestScoreCandidate_DecimalPoint(t *testing.T) {
	v := DefaultVocabulary()
	withDecimal := v.ScoreCandidate("xx 10.50 yy", "10.50", 3)
	withoutDecimal := v.ScoreCandidate("xx 1050 yy", "1050", 3)
	assert.InDelta(t, weightDecimalPoint, withDecimal-withoutDecimal, 0.001)
}

func TestScoreCandidate_DigitCount(t *testing.T) {
	v := DefaultVocabulary()
	short := v.ScoreCandidate("xx 42 yy", "42", 3)
	long := v.ScoreCandidate("xx 42424242 yy", "42424242", 3)
	assert.Greater(t, short, long)

	// Anything with 20+ digits gets no shortness bonus.
	huge := "12345678901234567890123"
	assert.InDelta(t, 0, v.ScoreCandidate("xx "+huge, huge, 3), 0.001)
}

func TestScoreCandidate_CurrencyWindow(t *testing.T) {
	v := DefaultVocabulary()
	near := v.ScoreCandidate("rs 100", "100", 3)
	far := v.ScoreCandidate("xx 100", "100", 3)
	assert.InDelta(t, weightCurrencyNear, near-far, 0.001)
}

func TestScoreCandidate_AmountLabel(t *testing.T) {
	v := DefaultVocabulary()
	labeled := v.ScoreCandidate("amount 500", "500", 7)
	plain := v.ScoreCandidate("huhwat 500", "500", 7)
	assert.InDelta(t, weightAmountLabel, labeled-plain, 0.001)
}

func TestScoreCandidate_KeywordProximity(t *testing.T) {
	v := DefaultVocabulary()
	// "debited" at offset 0; closer tokens collect a larger contribution.
	near := v.ScoreCandidate("debited 100", "100", 8)
	far := v.ScoreCandidate("debited                 100", "100", 24)
	assert.Greater(t, near, far)
}
