package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wiradata/bukubesar_app/internal/core/domain"
)

// SignedDelta applies the correct sign to a posting amount based on the
// account type and entry side. This is the single sign convention used by the
// ledger aggregator, trial balance calculator, adjustment applier and
// worksheet builder.
//
// DEBIT to a debit-normal account (assets, expense, COGS) -> Positive (+)
// CREDIT to a debit-normal account -> Negative (-)
// DEBIT to a credit-normal account (liability, equity, revenue) -> Negative (-)
// CREDIT to a credit-normal account -> Positive (+)
func SignedDelta(accountType domain.AccountType, side domain.EntrySide, amount decimal.Decimal) decimal.Decimal {
	if accountType.IsDebitNormal() == (side == domain.Debit) {
		return amount
	}
	return amount.Neg()
}

// SignedOpening converts an opening balance into its signed initial balance
// under the same convention.
func SignedOpening(accountType domain.AccountType, ob domain.OpeningBalance) decimal.Decimal {
	return SignedDelta(accountType, ob.Side, ob.Amount)
}

// FinalBalance computes the signed final balance from the signed initial
// balance and the debit/credit totals: for debit-normal types
// initial + debit - credit, for credit-normal types initial + credit - debit.
func FinalBalance(accountType domain.AccountType, initial, totalDebit, totalCredit decimal.Decimal) decimal.Decimal {
	if accountType.IsDebitNormal() {
		return initial.Add(totalDebit).Sub(totalCredit)
	}
	return initial.Add(totalCredit).Sub(totalDebit)
}

// SplitBalance splits a signed final balance into a single display column:
// a positive balance on a debit-normal account displays as a debit, a
// negative one as a credit of the absolute value, and mirrored for
// credit-normal accounts.
func SplitBalance(accountType domain.AccountType, final decimal.Decimal) (debit, credit decimal.Decimal) {
	if final.IsNegative() {
		if accountType.IsDebitNormal() {
			return decimal.Zero, final.Abs()
		}
		return final.Abs(), decimal.Zero
	}
	if accountType.IsDebitNormal() {
		return final, decimal.Zero
	}
	return decimal.Zero, final
}

// NetColumns re-nets paired debit/credit columns into a single display column.
// This re-derivation is mandatory after merging adjustments: summing both
// columns naively would double-count an account touched on both sides.
func NetColumns(accountType domain.AccountType, debit, credit decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	var final decimal.Decimal
	if accountType.IsDebitNormal() {
		final = debit.Sub(credit)
	} else {
		final = credit.Sub(debit)
	}
	return SplitBalance(accountType, final)
}

// ValidateEntries checks that a set of journal entries forms a valid
// double-entry posting: at least two entries, positive amounts, and the debit
// side summing equal to the credit side.
func ValidateEntries(entries []domain.JournalEntry) error {
	if len(entries) < 2 {
		return fmt.Errorf("journal must have at least two entries")
	}

	debitSum := decimal.Zero
	creditSum := decimal.Zero
	for _, e := range entries {
		if e.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("entry amount must be positive for account %s", e.AccountCode)
		}
		if e.Side == domain.Debit {
			debitSum = debitSum.Add(e.Amount)
		} else {
			creditSum = creditSum.Add(e.Amount)
		}
	}

	if !debitSum.Equal(creditSum) {
		return fmt.Errorf("journal entries do not balance: debits sum is %s and credits sum is %s",
			debitSum.String(), creditSum.String())
	}
	return nil
}

// DebitTotal returns the sum of the debit side of a set of entries: the
// economic value of a balanced journal.
func DebitTotal(entries []domain.JournalEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Side == domain.Debit {
			total = total.Add(e.Amount)
		}
	}
	return total
}
