package rename_desk

// RenameDeskRequest HTTP request model
type RenameDeskRequest struct {
	Name string `json:"name"`
}
