package dto

// ListResponse is the success envelope for collection endpoints.
type ListResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Count   int         `json:"count"`
	Message string      `json:"message,omitempty"`
}

// ItemResponse is the success envelope for single-item endpoints.
type ItemResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is the uniform success envelope without data.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
