package dto

// CreateProjectRequest is the payload for creating a project
type CreateProjectRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// UpdateProjectRequest renames a project
type UpdateProjectRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}
