package app

import "context"

// Ticket is a support request to the site staff.
type Ticket struct {
	Subject string
	Message string
	Type    string // e.g. "general", "bug", "account"
}

// SupportService files support tickets with the backend. Submitting
// requires a logged-in session; listing and triage are staff-side
// concerns the client does not touch.
type SupportService interface {
	// Submit files a ticket and returns the server's confirmation
	// message.
	Submit(ctx context.Context, t Ticket) (string, error)
}
