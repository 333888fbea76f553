package classify

import "strings"

// Vocabulary holds the keyword tables the classification stages match
// against. All entries are lowercase; matching is done on lowercased text.
type Vocabulary struct {
	Exclusions []string
	Debit      []string
	Credit     []string
	WalletLoad []string
	Recharge   []string
	ATM        []string
}

// DefaultVocabulary returns the built-in keyword tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Exclusions: []string{
			"otp",
			"one time password",
			"password",
			"pin",
			"failed",
			"declined",
			"cancelled",
			"invalid",
			"rejected",
			"unsuccessful",
			"not successful",
		},
		Debit: []string{
			"debited",
			"spent",
			"paid",
			"withdrawn",
			"purchase",
			"pos",
			"atm",
			"payment",
			"transfer to",
			"sent to",
			"dr.",
			"dr:",
			"payment for",
			"deducted",
		},
		Credit: []string{
			"credited",
			"deposit",
			"deposited",
			"received",
			"refunded",
			"transfer from",
			"received from",
			"salary",
			"income",
			"bonus",
			"cr.",
			"cr:",
			"cash back",
		},
		WalletLoad: []string{
			"wallet load",
			"esewa",
			"khalti",
			"wallet topup",
			"load wallet",
		},
		Recharge: []string{
			"recharge",
			"topup",
			"top-up",
			"data pack",
			"package activated",
			"airtel recharge",
			"ntc recharge",
		},
		ATM: []string{
			"atm withdrawal",
			"withdrawn at",
			"atm",
		},
	}
}

// Merge appends extra keywords to each table and returns the result.
func (v Vocabulary) Merge(extra Vocabulary) Vocabulary {
	return Vocabulary{
		Exclusions: concat(v.Exclusions, extra.Exclusions),
		Debit:      concat(v.Debit, extra.Debit),
		Credit:     concat(v.Credit, extra.Credit),
		WalletLoad: concat(v.WalletLoad, extra.WalletLoad),
		Recharge:   concat(v.Recharge, extra.Recharge),
		ATM:        concat(v.ATM, extra.ATM),
	}
}

// proximityKeywords is the combined list used for distance scoring in the
// amount extractor.
func (v Vocabulary) proximityKeywords() []string {
	all := concat(v.Debit, v.Credit)
	all = append(all, v.WalletLoad...)
	all = append(all, v.Recharge...)
	all = append(all, v.ATM...)
	return append(all, "fund transfer", "transfer to", "transfer from")
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// closestKeyword returns the character distance from offset to the nearest
// first occurrence of any keyword, and whether any keyword was found.
func closestKeyword(text string, keywords []string, offset int) (int, bool) {
	best := -1
	for _, kw := range keywords {
		idx := strings.Index(text, kw)
		if idx < 0 {
			continue
		}
		dist := idx - offset
		if dist < 0 {
			dist = -dist
		}
		if best < 0 || dist < best {
			best = dist
		}
	}
	return best, best >= 0
}
