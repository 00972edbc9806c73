package check_template

// CheckTemplateResponse HTTP response model
type CheckTemplateResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	SheetName string            `json:"sheet_name"`
	KeyCells  map[string]string `json:"key_cells"`
}
