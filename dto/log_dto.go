package dto

// CreateLogRequest is the payload for appending a log record
type CreateLogRequest struct {
	Level    string   `json:"level" binding:"required"`
	Category *string  `json:"category"`
	Message  string   `json:"message" binding:"required"`
	Tags     []string `json:"tags"`
}

// UpdateLogRequest updates a log in place. Nil fields are left unchanged.
type UpdateLogRequest struct {
	Level    *string   `json:"level"`
	Category *string   `json:"category"`
	Message  *string   `json:"message"`
	Tags     *[]string `json:"tags"`
}
