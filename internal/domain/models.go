package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

type Invoice struct {
	ID         int           `db:"id"`
	CustomerID int           `db:"customer_id"`
	Amount     int64         `db:"amount"`
	Status     InvoiceStatus `db:"status"`
	Date       time.Time     `db:"date"`
}

type Customer struct {
	ID       int    `db:"id"`
	Name     string `db:"name"`
	Email    string `db:"email"`
	ImageURL string `db:"image_url"`
}

type User struct {
	ID           int    `db:"id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
}

type Revenue struct {
	Month   string `db:"month"`
	Revenue int64  `db:"revenue"`
}

// InvoiceInput is a validated invoice form, amount still in major units.
type InvoiceInput struct {
	CustomerID int
	Amount     float64
	Status     InvoiceStatus
}

// InvoiceForm is a single invoice prepared for an edit form,
// amount converted back to major units.
type InvoiceForm struct {
	ID         string
	CustomerID string
	Amount     float64
	Status     InvoiceStatus
}

type LatestInvoice struct {
	ID       string
	Amount   string
	Name     string
	Email    string
	ImageURL string
}

// InvoiceRow is one row of the filtered invoice table, joined with its customer.
type InvoiceRow struct {
	ID       int
	Amount   int64
	Date     time.Time
	Status   InvoiceStatus
	Name     string
	Email    string
	ImageURL string
}

type CustomerField struct {
	ID   int
	Name string
}

// CustomerWithTotals is the raw outer-join row: every customer appears,
// zero-invoice customers with zeroed totals.
type CustomerWithTotals struct {
	ID            int
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int64
	TotalPending  int64
	TotalPaid     int64
}

type CustomerSummary struct {
	ID            int
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int64
	TotalPending  string
	TotalPaid     string
}

type CardData struct {
	NumberOfInvoices  int64
	NumberOfCustomers int64
	TotalPaid         string
	TotalPending      string
}

// StatusTotals is the single-pass amount sum split by invoice status.
type StatusTotals struct {
	Paid    int64
	Pending int64
}

// MutationResult tells the calling layer which cached views became stale
// and where to send the client, instead of performing those effects
// itself. Consumers must apply invalidations before the redirect.
type MutationResult struct {
	Invalidated []string
	RedirectTo  string
}
