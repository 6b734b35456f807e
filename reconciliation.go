package backoffice

import "slices"

// StatusTotal sums the bank lines of one status in one currency.
type StatusTotal struct {
	Status   ReconciliationStatus
	Currency string
	Count    int
	Total    Money
}

// statusOrder is the order totals are reported in.
var statusOrder = []ReconciliationStatus{Matched, Partial, Unmatched}

// Reconciliation totals txs by status then currency. Statuses come in the
// order Matched, Partially Matched, Unmatched, then any other status in
// first-seen order; currencies in first-seen order.
func Reconciliation(txs []BankTransaction) []StatusTotal {
	statuses := slices.Clone(statusOrder)
	var currencies []string
	for _, tx := range txs {
		if !slices.Contains(statuses, tx.Status) {
			statuses = append(statuses, tx.Status)
		}
		if !slices.Contains(currencies, tx.Amount.Currency()) {
			currencies = append(currencies, tx.Amount.Currency())
		}
	}

	totals := make([]StatusTotal, 0)
	for _, s := range statuses {
		for _, cur := range currencies {
			st := StatusTotal{Status: s, Currency: cur, Total: M(0, cur)}
			for _, tx := range txs {
				if tx.Status == s && tx.Amount.Currency() == cur {
					st.Count++
					st.Total = st.Total.Add(tx.Amount)
				}
			}
			if st.Count > 0 {
				totals = append(totals, st)
			}
		}
	}
	return totals
}

// Reconciliation totals the bank lines matching q.
func (c *Catalog) Reconciliation(q Query) []StatusTotal {
	return Reconciliation(c.Transactions.List(q))
}
