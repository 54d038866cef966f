package repository

// CreateOptions holds parameters for inserting a new Reservation.
type CreateOptions struct {
	UserID  string
	Date    string // YYYY-MM-DD
	Time    string // HH:MM
	Purpose string
}
