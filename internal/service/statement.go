package service

import (
	"fmt"
	"slices"
	"strings"

	"bank-ledger/internal/core/domain"

	"github.com/google/uuid"
)

const (
	statementDateLayout  = "02/01/2006 15:04 "
	statementAmountWidth = 13
)

var statementRule = strings.Repeat("-", 56)

// RenderStatement formats ops (given in insertion order) as a plain-text
// account statement. The balance line comes from the last inserted
// operation; rows are sorted by date descending, and rows sharing a date
// list the later insertion first.
func RenderStatement(accountID uuid.UUID, ops []domain.Operation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "History for account %s\n", accountID)
	b.WriteString(statementRule + "\n")

	var last *domain.Operation
	if len(ops) > 0 {
		last = &ops[len(ops)-1]
	}
	fmt.Fprintf(&b, "Balance: %s\n", domain.FormatDecimal(domain.BalanceOf(last)))
	b.WriteString(statementRule + "\n")

	for _, op := range statementOrder(ops) {
		fmt.Fprintf(&b, "%s| %-*s| %s\n",
			op.Date.Format(statementDateLayout),
			statementAmountWidth, domain.FormatDecimal(op.SignedAmount()),
			op.OperationType,
		)
	}

	return b.String()
}

func statementOrder(ops []domain.Operation) []domain.Operation {
	out := slices.Clone(ops)
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b domain.Operation) int {
		return b.Date.Compare(a.Date)
	})
	return out
}
