package cleanup_documents

// CleanupResponse HTTP response model
type CleanupResponse struct {
	Success            bool   `json:"success"`
	Message            string `json:"message"`
	RemainingDocuments int    `json:"remaining_documents"`
}
