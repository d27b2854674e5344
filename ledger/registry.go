package ledger

// Ticket statuses. Redeemed is terminal, but only by caller-side
// precondition; the registry itself enforces nothing.
const (
	StatusValid    = "valid"
	StatusRedeemed = "redeemed"
)

// Ticket is the current projected state of one ticket id.
type Ticket struct {
	Owner  string `json:"owner"`
	Status string `json:"status"`
}

// TicketRegistry is the key-value projection of current ticket state
// derived from accepted transactions. Entries are upserted, never
// deleted. Not goroutine-safe; owned by the ticketing service.
type TicketRegistry struct {
	tickets map[string]Ticket
}

func NewTicketRegistry() *TicketRegistry {
	return &TicketRegistry{tickets: make(map[string]Ticket)}
}

// Record unconditionally overwrites the entry for a ticket id.
func (r *TicketRegistry) Record(ticketID, owner, status string) {
	r.tickets[ticketID] = Ticket{Owner: owner, Status: status}
}

// Lookup returns the current entry and whether the ticket is known.
func (r *TicketRegistry) Lookup(ticketID string) (Ticket, bool) {
	t, ok := r.tickets[ticketID]
	return t, ok
}
