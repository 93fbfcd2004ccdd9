package fixtures

import "slices"

// User is a source record for the users collection. The password is
// plaintext here and hashed at seed time.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
}

// Customer is a source record for the customers collection.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

// Invoice is a source record for the invoices collection. CustomerID
// must match the ID of a Customer in the same dataset. Amount is in
// cents, Date is YYYY-MM-DD.
type Invoice struct {
	CustomerID string
	Amount     int
	Status     string
	Date       string
}

// Revenue is a source record for the revenue collection.
type Revenue struct {
	Month   string
	Revenue int
}

// Provider supplies the read-only dataset a seeding run loads from.
type Provider interface {
	Users() []User
	Customers() []Customer
	Invoices() []Invoice
	Revenue() []Revenue
}

// Static is the built-in placeholder dataset for the demo dashboard.
type Static struct{}

func NewStatic() *Static {
	return &Static{}
}

func (*Static) Users() []User {
	return slices.Clone(placeholderUsers)
}

func (*Static) Customers() []Customer {
	return slices.Clone(placeholderCustomers)
}

func (*Static) Invoices() []Invoice {
	return slices.Clone(placeholderInvoices)
}

func (*Static) Revenue() []Revenue {
	return slices.Clone(placeholderRevenue)
}
