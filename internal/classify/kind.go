package classify

import (
	"regexp"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Explicit phrasings checked before falling back to proximity. Bank messages
// often mention both a source and a destination account; these patterns are
// unambiguous about which side the message is reporting.
var (
	transferOutRe = regexp.MustCompile(`\b(fund transfer of|transfer of|transfer to)\b`)
	transferInRe  = regexp.MustCompile(`\b(transfer from|fund transfer from)\b`)
	toAccountRe   = regexp.MustCompile(`\bto\s+a?/?c\b`)
	fromAccountRe = regexp.MustCompile(`\bfrom\s+a?/?c\b`)
	withdrawnRe   = regexp.MustCompile(`\bwithdrawn\b`)
	debitedRe     = regexp.MustCompile(`\bdebited\b|\bdeducted\b|\bpaid to\b`)
	creditedRe    = regexp.MustCompile(`\bcredited\b|\bdeposited\b`)
)

// ClassifyKind decides the transaction direction for a lowercased message,
// given the character offset of the extracted amount. Rules run in priority
// order, first match wins. Returns false when no rule matches and no
// debit/credit keyword appears anywhere.
func (v Vocabulary) ClassifyKind(lowered string, amountIndex int) (model.Kind, bool) {
	switch {
	case containsAny(lowered, v.WalletLoad):
		// Money leaving the bank account for a wallet balance.
		return model.KindDebit, true
	case containsAny(lowered, v.Recharge):
		return model.KindRecharge, true
	case transferOutRe.MatchString(lowered) || toAccountRe.MatchString(lowered) ||
		withdrawnRe.MatchString(lowered) || debitedRe.MatchString(lowered):
		return model.KindDebit, true
	case transferInRe.MatchString(lowered) || fromAccountRe.MatchString(lowered) ||
		creditedRe.MatchString(lowered):
		return model.KindCredit, true
	}

	// Neither side is explicit: the keyword closest to the amount figure is
	// the more reliable indicator of what happened to that sum.
	debitDist, haveDebit := closestKeyword(lowered, concat(v.Debit, []string{"fund transfer", "transfer to"}), amountIndex)
	creditDist, haveCredit := closestKeyword(lowered, concat(v.Credit, []string{"transfer from"}), amountIndex)

	switch {
	case haveDebit && (!haveCredit || debitDist <= creditDist):
		return model.KindDebit, true
	case haveCredit:
		return model.KindCredit, true
	}
	return "", false
}
