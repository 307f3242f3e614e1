package dto

// CreateContentRequest registers a content item in the registry.
type CreateContentRequest struct {
	Title string `json:"title" binding:"required"`
	Type  string `json:"type" binding:"required"`
	URL   string `json:"url"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
