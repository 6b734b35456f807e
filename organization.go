package backoffice

// This file holds the records of the company setup pages: companies, users,
// roles, permissions and policies.

// CompanyStatus is the lifecycle status of a company.
type CompanyStatus string

const (
	CompanyActive   CompanyStatus = "Active"
	CompanyInactive CompanyStatus = "Inactive"
)

// Company is a tenant set up in the back office.
type Company struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Code     string        `json:"code"`
	Country  string        `json:"country"`
	Currency string        `json:"currency"`
	Email    string        `json:"email"`
	Status   CompanyStatus `json:"status"`
}

// UserStatus is the status of a user account.
type UserStatus string

const (
	UserActive    UserStatus = "Active"
	UserPending   UserStatus = "Pending"
	UserSuspended UserStatus = "Suspended"
)

// User is a person with access to one company.
type User struct {
	ID      int        `json:"id"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Role    string     `json:"role"`
	Company string     `json:"company"`
	Status  UserStatus `json:"status"`
}

// Role groups permissions. Scope is the company the role applies to, or
// "All Tenants" for roles shared by every company.
type Role struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Scope       string `json:"scope"`
	Description string `json:"description"`
	Members     int    `json:"members"`
}

// Permission grants, or denies, an action on a module to a role.
type Permission struct {
	ID      int    `json:"id"`
	Module  string `json:"module"`
	Action  string `json:"action"`
	Role    string `json:"role"`
	Allowed bool   `json:"allowed"`
}

// PolicyStatus tells whether a policy is enforced.
type PolicyStatus string

const (
	PolicyEnabled  PolicyStatus = "Enabled"
	PolicyDisabled PolicyStatus = "Disabled"
)

// Policy is a company wide rule, like password rotation or approval limits.
type Policy struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Status      PolicyStatus `json:"status"`
	Description string       `json:"description"`
}
