package classify

import "github.com/fintrack-dev/fintrack/internal/model"

// AssignCategory maps a lowercased message and its decided kind to a
// spending category. Pure function, first matching rule wins.
func (v Vocabulary) AssignCategory(lowered string, kind model.Kind) model.Category {
	switch {
	case containsAny(lowered, v.WalletLoad):
		return model.CategoryWalletLoad
	case containsAny(lowered, v.Recharge):
		return model.CategoryMobileRecharge
	case kind == model.KindCredit:
		return model.CategoryDeposit
	case kind == model.KindDebit:
		return model.CategoryWithdrawal
	}
	return model.CategoryOther
}
