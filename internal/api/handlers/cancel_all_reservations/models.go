package cancel_all_reservations

// CancelAllResponse HTTP response model
type CancelAllResponse struct {
	Cancelled int64 `json:"cancelled"`
}
