// Package seed generates demo transactions for a fresh ledger.
package seed

import (
	"github.com/brianvoe/gofakeit/v6"

	"ledger/internal/core"
)

// Descriptions used for demo transactions.
var Descriptions = []string{
	"pizza", "salary", "coffee", "jeans", "ticket", "groceries", "gift", "bills",
	"shirt", "shoes", "soda", "water", "bread", "internet", "candle",
}

const (
	minAmount = 1
	maxAmount = 100
)

// Random returns n transactions drawn from faker: days 1..30, amounts
// 1..100, either kind, descriptions from Descriptions.
func Random(n int, faker *gofakeit.Faker) core.Collection {
	if faker == nil {
		faker = gofakeit.New(0)
	}
	out := make(core.Collection, 0, n)
	for i := 0; i < n; i++ {
		kind := core.In
		if faker.Bool() {
			kind = core.Out
		}
		out = append(out, core.Transaction{
			Day:         faker.Number(core.MinDay, core.MaxDay),
			Amount:      core.NewAmount(int64(faker.Number(minAmount, maxAmount))),
			Kind:        kind,
			Description: faker.RandomString(Descriptions),
		})
	}
	return out
}
