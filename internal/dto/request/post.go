package request

type CreatePostRequest struct {
	Type     string    `json:"type" validate:"required,oneof=community emergency news"`
	Title    string    `json:"title" validate:"required,max=200"`
	Content  string    `json:"content" validate:"required"`
	Images   []string  `json:"images,omitempty" validate:"omitempty,dive,url"`
	Location *Location `json:"location,omitempty"`
	Priority string    `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
}
