// Package tickets models tickets the user already owns.
package tickets

// Status of an owned ticket.
type Status string

// Ticket lifecycle states.
const (
	StatusActive  Status = "active"
	StatusUsed    Status = "used"
	StatusExpired Status = "expired"
)

// Ticket is a purchased ticket as recorded by the backend.
type Ticket struct {
	ID         string  `json:"id" yaml:"id"`
	UserID     string  `json:"user_id" yaml:"user_id"`
	EventID    int64   `json:"event_id" yaml:"event_id"`
	EventName  string  `json:"event_name" yaml:"event_name"`
	Venue      string  `json:"venue" yaml:"venue"`
	Date       string  `json:"date" yaml:"date"`
	TicketType string  `json:"ticket_type" yaml:"ticket_type"`
	Quantity   int     `json:"quantity" yaml:"quantity"`
	Total      float64 `json:"total" yaml:"total"`
	Status     Status  `json:"status" yaml:"status"`
	Reference  string  `json:"reference" yaml:"reference"`
}

// Usable reports whether the ticket still grants entry.
func (t Ticket) Usable() bool {
	return t.Status == StatusActive
}
