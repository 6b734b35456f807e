package backoffice

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// Seed files, one JSON object per line, in a dataset folder.
const (
	CompaniesFile    = "companies.jsonl"
	UsersFile        = "users.jsonl"
	RolesFile        = "roles.jsonl"
	PermissionsFile  = "permissions.jsonl"
	PoliciesFile     = "policies.jsonl"
	AuditFile        = "audit.jsonl"
	TransactionsFile = "bank.jsonl"
	AccountsFile     = "accounts.jsonl"
	CustomersFile    = "customers.jsonl"
	InvoicesFile     = "invoices.jsonl"
	PlansFile        = "plans.jsonl"
)

// DecodeDataset reads every seed file of fsys. A missing file is an empty
// collection.
func DecodeDataset(fsys fs.FS) (*Dataset, error) {
	d := new(Dataset)
	var err error
	if d.Companies, err = decodeFile[Company](fsys, CompaniesFile); err != nil {
		return nil, err
	}
	if d.Users, err = decodeFile[User](fsys, UsersFile); err != nil {
		return nil, err
	}
	if d.Roles, err = decodeFile[Role](fsys, RolesFile); err != nil {
		return nil, err
	}
	if d.Permissions, err = decodeFile[Permission](fsys, PermissionsFile); err != nil {
		return nil, err
	}
	if d.Policies, err = decodeFile[Policy](fsys, PoliciesFile); err != nil {
		return nil, err
	}
	if d.Audit, err = decodeFile[AuditEntry](fsys, AuditFile); err != nil {
		return nil, err
	}
	if d.Transactions, err = decodeFile[BankTransaction](fsys, TransactionsFile); err != nil {
		return nil, err
	}
	if d.Accounts, err = decodeFile[Account](fsys, AccountsFile); err != nil {
		return nil, err
	}
	if d.Customers, err = decodeFile[Customer](fsys, CustomersFile); err != nil {
		return nil, err
	}
	if d.Invoices, err = decodeFile[Invoice](fsys, InvoicesFile); err != nil {
		return nil, err
	}
	if d.Plans, err = decodeFile[Plan](fsys, PlansFile); err != nil {
		return nil, err
	}
	return d, nil
}

func decodeFile[T any](fsys fs.FS, name string) ([]T, error) {
	f, err := fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return make([]T, 0), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", name, err)
	}
	defer f.Close()
	return decodeSeed[T](name, f)
}

// validator is implemented by records with constraints across fields.
type validator interface {
	validate() error
}

// decodeSeed reads records of type T, one per line. Every record must have
// a unique positive "id" and only known fields. filename is for error
// messages only.
func decodeSeed[T any](filename string, r io.Reader) ([]T, error) {
	records := make([]T, 0)
	seen := make(map[int]int) // id -> line
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var identity struct {
			ID *int `json:"id"`
		}
		if err := json.Unmarshal(line, &identity); err != nil {
			return nil, fmt.Errorf("format error in %q on line %d: %w", filename, n, err)
		}
		if identity.ID == nil || *identity.ID <= 0 {
			return nil, fmt.Errorf("format error in %q on line %d: missing positive id", filename, n)
		}
		if prev, ok := seen[*identity.ID]; ok {
			return nil, fmt.Errorf("format error in %q on line %d: id %d is already used on line %d", filename, n, *identity.ID, prev)
		}
		seen[*identity.ID] = n

		var rec T
		dec := json.NewDecoder(bytes.NewReader(line))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("format error in %q on line %d: %w", filename, n, err)
		}
		if v, ok := any(rec).(validator); ok {
			if err := v.validate(); err != nil {
				return nil, fmt.Errorf("format error in %q on line %d: %w", filename, n, err)
			}
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", filename, err)
	}
	return records, nil
}
