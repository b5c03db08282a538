package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smart-ledger/ledger-backend/internal/core/domain"
	"github.com/smart-ledger/ledger-backend/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(name string, amount int64, txnType domain.TransactionType, personType domain.PersonType) domain.Transaction {
	t := domain.Transaction{
		Name:       name,
		Amount:     decimal.NewFromInt(amount),
		Type:       txnType,
		PersonType: personType,
		Date:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	t.NormalizeSite()
	return t
}

func TestGlobalTotalsEmptyCollection(t *testing.T) {
	totals := ledger.GlobalTotals(nil)
	assert.True(t, totals.TotalIn.IsZero())
	assert.True(t, totals.TotalOut.IsZero())
	assert.True(t, totals.Net.IsZero())
	assert.Zero(t, totals.Count)
	assert.True(t, totals.IsPositive())
}

func TestPerPersonNetMatchesWorkedExample(t *testing.T) {
	txns := []domain.Transaction{
		txn("Ramesh/SiteA", 500, domain.MoneyOut, domain.Worker),
		txn("Ramesh/SiteA", 200, domain.MoneyIn, domain.Worker),
	}

	people := ledger.SummarizeByPerson(txns)
	require.Len(t, people, 1)
	assert.Equal(t, "Ramesh/SiteA", people[0].Name)
	// Net -300: the owner will pay 300.
	assert.True(t, people[0].Net.Equal(decimal.NewFromInt(-300)), "net = %s", people[0].Net)
	assert.False(t, people[0].IsPositive())
}

func TestSiteSummaryWorkedExample(t *testing.T) {
	site := domain.Site{Name: "SiteA", Budget: decimal.NewFromInt(1000)}
	txns := []domain.Transaction{
		txn("Ramesh/SiteA", 500, domain.MoneyOut, domain.Worker),
		txn("Ramesh/SiteA", 200, domain.MoneyIn, domain.Worker),
		txn("Suresh/SiteB", 900, domain.MoneyOut, domain.Worker),
	}

	s := ledger.SummarizeSite(site, txns)
	assert.True(t, s.TotalSpent.Equal(decimal.NewFromInt(500)))
	assert.True(t, s.TotalReceived.Equal(decimal.NewFromInt(200)))
	assert.True(t, s.NetAmount.Equal(decimal.NewFromInt(300)))
	assert.True(t, s.BudgetUsedPct.Equal(decimal.NewFromInt(30)))
	assert.True(t, s.Remaining.Equal(decimal.NewFromInt(700)))
	assert.Equal(t, 2, s.Count)
}

func TestSiteSummaryZeroBudgetDoesNotBlowUp(t *testing.T) {
	site := domain.Site{Name: "SiteA", Budget: decimal.Zero}
	txns := []domain.Transaction{txn("Ramesh/SiteA", 500, domain.MoneyOut, domain.Worker)}

	s := ledger.SummarizeSite(site, txns)
	assert.True(t, s.BudgetUsedPct.IsZero())
	assert.True(t, s.Remaining.Equal(decimal.NewFromInt(-500)))
}

func TestConservationLaw(t *testing.T) {
	// Global net must equal the sum of per-person nets.
	txns := []domain.Transaction{
		txn("Ramesh/SiteA", 500, domain.MoneyOut, domain.Worker),
		txn("Ramesh/SiteA", 200, domain.MoneyIn, domain.Worker),
		txn("XYZ Materials", 1000, domain.MoneyOut, domain.Supplier),
		txn("Suresh", 750, domain.MoneyIn, domain.Worker),
		txn("ABC Suppliers/SiteB", 125, domain.MoneyOut, domain.Supplier),
	}

	global := ledger.GlobalTotals(txns)
	sum := decimal.Zero
	for _, p := range ledger.SummarizeByPerson(txns) {
		sum = sum.Add(p.Net)
	}
	assert.True(t, global.Net.Equal(sum), "global %s != person sum %s", global.Net, sum)
}

func TestAggregationIsIdempotent(t *testing.T) {
	txns := []domain.Transaction{
		txn("Ramesh/SiteA", 500, domain.MoneyOut, domain.Worker),
		txn("XYZ Materials", 1000, domain.MoneyOut, domain.Supplier),
	}
	assert.Equal(t, ledger.SummarizeByPerson(txns), ledger.SummarizeByPerson(txns))
	assert.Equal(t, ledger.GlobalTotals(txns), ledger.GlobalTotals(txns))
}

func TestUntaggedTransactionLandsInExtraBucketOnly(t *testing.T) {
	txns := []domain.Transaction{
		txn("XYZ Materials", 1000, domain.MoneyOut, domain.Supplier),
		txn("Ramesh/SiteA", 500, domain.MoneyOut, domain.Worker),
	}

	extra := ledger.SummarizeUncategorized(txns)
	assert.Equal(t, 1, extra.Count)
	assert.True(t, extra.Total.Equal(decimal.NewFromInt(1000)))

	siteA := ledger.SummarizeSite(domain.Site{Name: "SiteA", Budget: decimal.NewFromInt(1)}, txns)
	assert.Equal(t, 1, siteA.Count, "untagged transaction must not appear under a named site")
}

func TestSearchSummaryCaseInsensitiveSubstring(t *testing.T) {
	txns := []domain.Transaction{
		txn("Ramesh Kumar", 300, domain.MoneyIn, domain.Worker),
		txn("Suresh", 200, domain.MoneyOut, domain.Worker),
	}

	summary := ledger.SearchSummary(txns, "ram")
	assert.Equal(t, 1, summary.Count)
	assert.True(t, summary.TotalIn.Equal(decimal.NewFromInt(300)))

	// Empty query is the identity filter.
	all := ledger.SearchSummary(txns, "   ")
	assert.Equal(t, 2, all.Count)
}

func TestSummarizeSuppliersGroupsByPrefix(t *testing.T) {
	txns := []domain.Transaction{
		txn("ABC Suppliers/SiteA", 100, domain.MoneyOut, domain.Supplier),
		txn("ABC Suppliers/SiteB", 50, domain.MoneyOut, domain.Supplier),
		txn("Ramesh/SiteA", 500, domain.MoneyOut, domain.Worker),
	}

	suppliers := ledger.SummarizeSuppliers(txns)
	require.Len(t, suppliers, 1)
	assert.Equal(t, "ABC Suppliers", suppliers[0].Name)
	assert.True(t, suppliers[0].TotalOut.Equal(decimal.NewFromInt(150)))
}

func TestSortByMagnitudeTieBreaksOnName(t *testing.T) {
	txns := []domain.Transaction{
		txn("Zara", 100, domain.MoneyOut, domain.Worker),
		txn("Anil", 100, domain.MoneyOut, domain.Worker),
		txn("Mohan", 900, domain.MoneyOut, domain.Worker),
	}

	people := ledger.SummarizeByPerson(txns)
	ledger.SortByMagnitude(people)
	require.Len(t, people, 3)
	assert.Equal(t, "Mohan", people[0].Name)
	assert.Equal(t, "Anil", people[1].Name)
	assert.Equal(t, "Zara", people[2].Name)
}

func TestGroupOrderIsFirstAppearance(t *testing.T) {
	txns := []domain.Transaction{
		txn("B", 10, domain.MoneyIn, domain.Worker),
		txn("A", 10, domain.MoneyIn, domain.Worker),
		txn("B", 20, domain.MoneyOut, domain.Worker),
	}
	people := ledger.SummarizeByPerson(txns)
	require.Len(t, people, 2)
	assert.Equal(t, "B", people[0].Name)
	assert.Equal(t, "A", people[1].Name)
}
