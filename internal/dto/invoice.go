package dto

// InvoiceFormDTO carries the raw form fields as submitted; coercion and
// validation happen server-side.
type InvoiceFormDTO struct {
	CustomerID string `json:"customer_id" example:"3"`
	Amount     string `json:"amount" example:"99.50"`
	Status     string `json:"status" example:"paid"`
}

type InvoiceRowDTO struct {
	ID       int    `json:"id" example:"7"`
	Amount   int64  `json:"amount" example:"9950"`
	Date     string `json:"date" example:"2024-11-05"`
	Status   string `json:"status" example:"paid"`
	Name     string `json:"name" example:"Amy Burns"`
	Email    string `json:"email" example:"amy@burns.com"`
	ImageURL string `json:"image_url" example:"/customers/amy-burns.png"`
}

type InvoiceFormResponseDTO struct {
	ID         string  `json:"id" example:"7"`
	CustomerID string  `json:"customer_id" example:"3"`
	Amount     float64 `json:"amount" example:"99.5"`
	Status     string  `json:"status" example:"paid"`
}

type InvoicesPagesResponseDTO struct {
	TotalPages int `json:"total_pages" example:"3"`
}

// MutationResponseDTO surfaces the mutation result so the client can
// invalidate its views and follow the redirect itself.
type MutationResponseDTO struct {
	Invalidated []string `json:"invalidated"`
	RedirectTo  string   `json:"redirect_to,omitempty" example:"/dashboard/invoices"`
}

type ValidationErrorResponseDTO struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}
