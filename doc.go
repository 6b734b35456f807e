// Package backoffice provides the list pages of an accounting back office:
// companies, users, roles, permissions, policies, the audit log, bank
// reconciliation, the chart of accounts, customers, invoices and pricing
// plans.
//
// Every page is a seed collection of records searched with a free-text query
// and narrowed with categorical selectors (see Filter and Criteria). Dated
// pages also accept a range of days. Filtering never modifies the seed
// collection and keeps the records in their seed order.
//
// The seed data is read from JSONL files, one record per line (see
// DecodeDataset). Arbitrary JSONL collections can be listed as Records,
// their fields addressed with JSONPath.
//
// This package is the foundation of the `bo` command-line tool.
package backoffice
