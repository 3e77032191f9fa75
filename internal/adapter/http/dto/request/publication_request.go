package request

// PublicationRequest is the payload to create a listing. The type is
// derived from the author's role server-side; clientes always create
// service requests and tecnicos always create portfolio items.
type PublicationRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Budget      *float64 `json:"budget"`
	ImageURLs   []string `json:"image_urls"`
}
