package reservation

import "time"

// StatusConfirmed is the status every new reservation starts in.
const StatusConfirmed = "confirmed"

// --- Reservation Domain Model ---

// Reservation is one booked appointment. Date is YYYY-MM-DD and Time is HH:MM.
type Reservation struct {
	ID        string
	UserID    string
	Date      string
	Time      string
	Purpose   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// --- UseCase Inputs ---

// CreateInput carries the user's raw message. It is handed to the
// date/time extractor unmodified.
type CreateInput struct {
	RawText string
}

// BookInput is an already-structured reservation request.
type BookInput struct {
	Date    string
	Time    string
	Purpose string // empty means the configured default
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Reservation Reservation
	Message     string
}

type BookOutput struct {
	Reservation Reservation
}

type CancelOutput struct {
	Message string
}

type ListOutput struct {
	Reservations []Reservation
}
