package request

type GroupRequest struct {
	Name  string `json:"name" binding:"required" validate:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}
