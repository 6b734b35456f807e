package backoffice

import (
	"fmt"

	"github.com/etnz/backoffice/date"
	"github.com/shopspring/decimal"
)

// This file holds the records of the accounting pages.

// ReconciliationStatus is the matching state of a bank line.
type ReconciliationStatus string

const (
	Matched   ReconciliationStatus = "Matched"
	Unmatched ReconciliationStatus = "Unmatched"
	Partial   ReconciliationStatus = "Partially Matched"
)

// BankTransaction is a line of a bank statement to reconcile with the books.
// Amount is positive for money in.
type BankTransaction struct {
	ID          int                  `json:"id"`
	Date        date.Date            `json:"date"`
	Account     string               `json:"account"`
	Description string               `json:"description"`
	Reference   string               `json:"reference"`
	Amount      Money                `json:"amount"`
	Status      ReconciliationStatus `json:"status"`
}

// AccountType is the class of an account in the chart of accounts.
type AccountType string

const (
	Asset     AccountType = "Asset"
	Liability AccountType = "Liability"
	Equity    AccountType = "Equity"
	Income    AccountType = "Income"
	Expense   AccountType = "Expense"
)

// Account is an entry of the chart of accounts. Parent is the code of the
// parent account, empty for top level accounts.
type Account struct {
	ID      int         `json:"id"`
	Code    string      `json:"code"`
	Name    string      `json:"name"`
	Type    AccountType `json:"type"`
	Parent  string      `json:"parent,omitempty"`
	Balance Money       `json:"balance"`
	Active  bool        `json:"active"`
}

// Customer is a customer of the company.
type Customer struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	Paid    InvoiceStatus = "Paid"
	Due     InvoiceStatus = "Due"
	Overdue InvoiceStatus = "Overdue"
)

// Invoice is a billing document sent to a customer.
type Invoice struct {
	ID       int           `json:"id"`
	Number   string        `json:"number"`
	Customer string        `json:"customer"`
	Date     date.Date     `json:"date"`
	Amount   Money         `json:"amount"`
	Status   InvoiceStatus `json:"status"`
}

// Plan is a subscription offer of the pricing page.
type Plan struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Monthly Money  `json:"monthly"`
	Yearly  Money  `json:"yearly"`
	Seats   int    `json:"seats"`
	Popular bool   `json:"popular"`
}

// Discount is the saving of the yearly price over twelve monthly payments,
// 0 for a free plan or prices in different currencies.
func (p Plan) Discount() Percent {
	full := p.Monthly.Mul(decimal.NewFromInt(12))
	if full.IsZero() || p.validate() != nil {
		return 0
	}
	saving := full.Sub(p.Yearly).Decimal().Div(full.Decimal()).Mul(decimal.NewFromInt(100))
	return Percent(saving.InexactFloat64())
}

// validate checks that both prices are in the same currency.
func (p Plan) validate() error {
	if p.Monthly.Currency() != p.Yearly.Currency() {
		return fmt.Errorf("plan %q has a monthly price in %q but a yearly price in %q", p.Name, p.Monthly.Currency(), p.Yearly.Currency())
	}
	return nil
}

// AuditEntry is one line of the audit log.
type AuditEntry struct {
	ID      int       `json:"id"`
	Date    date.Date `json:"date"`
	User    string    `json:"user"`
	Company string    `json:"company"`
	Module  string    `json:"module"`
	Action  string    `json:"action"`
	IP      string    `json:"ip"`
}
