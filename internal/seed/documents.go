package seed

import "time"

// Collection names in the dashboard database.
const (
	CollectionUsers     = "users"
	CollectionCustomers = "customers"
	CollectionInvoices  = "invoices"
	CollectionRevenue   = "revenue"
)

// RevenueYear is the fixed year tag stamped on revenue documents.
const RevenueYear = 2024

// Collections lists the collections a run replaces, in insert order.
func Collections() []string {
	return []string{CollectionUsers, CollectionCustomers, CollectionInvoices, CollectionRevenue}
}

// UserDoc is a users document. The fixture identifier is reused as the
// storage key; Password holds the bcrypt hash, never plaintext.
type UserDoc struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// CustomerDoc is a customers document keyed by the fixture identifier.
type CustomerDoc struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	ImageURL  string    `bson:"image_url" json:"image_url"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// InvoiceDoc is an invoices document. The storage key is generated on
// insert; CustomerID references a CustomerDoc from the same run.
type InvoiceDoc struct {
	CustomerID string    `bson:"customer_id" json:"customer_id"`
	Amount     int       `bson:"amount" json:"amount"`
	Status     string    `bson:"status" json:"status"`
	Date       string    `bson:"date" json:"date"`
	CreatedAt  time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updated_at"`
}

// RevenueDoc is a revenue document. The storage key is generated on
// insert.
type RevenueDoc struct {
	Month     string    `bson:"month" json:"month"`
	Revenue   int       `bson:"revenue" json:"revenue"`
	Year      int       `bson:"year" json:"year"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}
