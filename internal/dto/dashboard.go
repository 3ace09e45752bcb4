package dto

type RevenueDTO struct {
	Month   string `json:"month" example:"Jan"`
	Revenue int64  `json:"revenue" example:"200000"`
}

type LatestInvoiceDTO struct {
	ID       string `json:"id" example:"12"`
	Amount   string `json:"amount" example:"$1,500.00"`
	Name     string `json:"name" example:"Amy Burns"`
	Email    string `json:"email" example:"amy@burns.com"`
	ImageURL string `json:"image_url" example:"/customers/amy-burns.png"`
}

type CardDataResponseDTO struct {
	NumberOfInvoices  int64  `json:"number_of_invoices" example:"13"`
	NumberOfCustomers int64  `json:"number_of_customers" example:"6"`
	TotalPaid         string `json:"total_paid" example:"$1.00"`
	TotalPending      string `json:"total_pending" example:"$0.50"`
}
