package classify

// Excluded reports whether the message text is disqualified outright:
// one-time-code chatter or a transaction that did not complete. An excluded
// message never reaches amount extraction, even if it contains a well-formed
// amount.
func (v Vocabulary) Excluded(lowered string) bool {
	return containsAny(lowered, v.Exclusions)
}
