package reconcile_test

import (
	"testing"

	"github.com/pgorczak/eventum/internal/domain/costs"
	"github.com/pgorczak/eventum/internal/domain/payments"
	"github.com/pgorczak/eventum/internal/domain/reconcile"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSummarize_Empty(t *testing.T) {
	sum := reconcile.Summarize("p1", nil, nil)
	require.True(t, sum.TotalNet.IsZero())
	require.True(t, sum.TotalGross.IsZero())
	require.True(t, sum.Balance.IsZero())
	require.Equal(t, reconcile.StateSettled, sum.State)
}

func TestSummarize_BalanceTransitions(t *testing.T) {
	lines := []costs.Line{
		// 1000.00 gross in total
		{Quantity: dec("1"), UnitNet: dec("813.01"), UnitGross: dec("1000.00")},
	}

	sum := reconcile.Summarize("p1", lines, nil)
	require.True(t, sum.Balance.Equal(dec("1000.00")), "balance %s", sum.Balance)
	require.Equal(t, reconcile.StateOutstanding, sum.State)

	pays := []payments.Payment{{ID: "m1", Amount: dec("400.00")}}
	sum = reconcile.Summarize("p1", lines, pays)
	require.True(t, sum.Balance.Equal(dec("600.00")), "balance %s", sum.Balance)
	require.Equal(t, reconcile.StateOutstanding, sum.State)

	pays = append(pays, payments.Payment{ID: "m2", Amount: dec("700.00")})
	sum = reconcile.Summarize("p1", lines, pays)
	require.True(t, sum.Balance.Equal(dec("-100.00")), "balance %s", sum.Balance)
	require.Equal(t, reconcile.StateOverpaid, sum.State, "overpayment is a valid state, not an error")
}

func TestSummarize_ExactSettlement(t *testing.T) {
	lines := []costs.Line{{Quantity: dec("2"), UnitNet: dec("100.00"), UnitGross: dec("123.00")}}
	pays := []payments.Payment{{Amount: dec("246.00")}}

	sum := reconcile.Summarize("p1", lines, pays)
	require.True(t, sum.Balance.IsZero())
	require.Equal(t, reconcile.StateSettled, sum.State)
}

func TestSummarize_PaymentDecreasesBalance(t *testing.T) {
	lines := []costs.Line{{Quantity: dec("1"), UnitNet: dec("500.00"), UnitGross: dec("615.00")}}

	var pays []payments.Payment
	prev := reconcile.Summarize("p1", lines, pays).Balance
	for _, amount := range []string{"100.00", "200.00", "400.00"} {
		pays = append(pays, payments.Payment{Amount: dec(amount)})
		cur := reconcile.Summarize("p1", lines, pays).Balance
		require.True(t, cur.Equal(prev.Sub(dec(amount))), "balance %s after paying %s from %s", cur, amount, prev)
		prev = cur
	}
	require.Equal(t, reconcile.StateOverpaid, reconcile.Summarize("p1", lines, pays).State)
}

func TestSummarize_RemovedLineLeavesNoResidual(t *testing.T) {
	lines := []costs.Line{
		{ID: "l1", Quantity: dec("2"), UnitNet: dec("100.00"), UnitGross: dec("123.00")},
		{ID: "l2", Quantity: dec("1"), UnitNet: dec("50.00"), UnitGross: dec("61.50")},
	}

	before := reconcile.Summarize("p1", lines, nil)
	require.True(t, before.TotalGross.Equal(dec("307.50")))

	after := reconcile.Summarize("p1", lines[:1], nil)
	require.True(t, after.TotalGross.Equal(dec("246.00")), "gross %s", after.TotalGross)
	require.True(t, after.TotalNet.Equal(dec("200.00")))
}
