package dto

type CustomerFieldDTO struct {
	ID   int    `json:"id" example:"3"`
	Name string `json:"name" example:"Amy Burns"`
}

type CustomerSummaryDTO struct {
	ID            int    `json:"id" example:"3"`
	Name          string `json:"name" example:"Amy Burns"`
	Email         string `json:"email" example:"amy@burns.com"`
	ImageURL      string `json:"image_url" example:"/customers/amy-burns.png"`
	TotalInvoices int64  `json:"total_invoices" example:"4"`
	TotalPending  string `json:"total_pending" example:"$0.50"`
	TotalPaid     string `json:"total_paid" example:"$1.00"`
}
