package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"ticketchain/ledger"
	"ticketchain/ticketing"
)

// HandleTicketHistory returns every mined transaction touching the ticket
// id, in chain order. Unknown ids yield an empty list, not an error.
func HandleTicketHistory(w http.ResponseWriter, r *http.Request, service *ticketing.Service) {
	ticketID := mux.Vars(r)["ticketId"]
	writeJSON(w, http.StatusOK, service.TicketHistory(ticketID))
}

func HandleVerify(w http.ResponseWriter, r *http.Request, service *ticketing.Service) {
	ticketID := mux.Vars(r)["ticketId"]

	ticket, ok := service.VerifyTicket(ticketID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"valid":   false,
			"message": "Ticket not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"valid":  ticket.Status == ledger.StatusValid,
		"ticket": ticket,
	})
}
