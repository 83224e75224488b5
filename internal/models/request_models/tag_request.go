package request_models

type CreateTagRequest struct {
	Kind string `json:"kind" binding:"required"`
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

type UpdateTagRequest struct {
	Kind *string `json:"kind"`
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}
