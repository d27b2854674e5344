package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"ticketchain/ticketing"
)

type issueRequest struct {
	Event           string  `json:"event"`
	Owner           string  `json:"owner"`
	Price           float64 `json:"price"`
	IssuerPubKey    string  `json:"issuer_pubkey"`
	IssuerSignature string  `json:"issuer_signature"`
}

func HandleIssue(w http.ResponseWriter, r *http.Request, service *ticketing.Service) {
	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Failed to decode issue request: %v", err)
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	// The ledger accepts any payload, so required-field checks live here.
	if req.Event == "" || req.Owner == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "event and owner are required",
		})
		return
	}

	ticketID := service.Issue(req.Event, req.Owner, req.Price, req.IssuerPubKey, req.IssuerSignature)
	log.Printf("Issued ticket %s for event %q to %s", ticketID, req.Event, req.Owner)

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":   "Ticket issued",
		"ticket_id": ticketID,
	})
}

type transferRequest struct {
	TicketID     string `json:"ticket_id"`
	NewOwner     string `json:"new_owner"`
	SenderPubKey string `json:"sender_pubkey"`
	Signature    string `json:"signature"`
}

func HandleTransfer(w http.ResponseWriter, r *http.Request, service *ticketing.Service) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Failed to decode transfer request: %v", err)
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	if err := service.Transfer(req.TicketID, req.NewOwner, req.SenderPubKey, req.Signature); err != nil {
		if errors.Is(err, ticketing.ErrInvalidTicket) {
			log.Printf("Transfer rejected for ticket %s: %v", req.TicketID, err)
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid ticket"})
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	log.Printf("Transferred ticket %s to %s", req.TicketID, req.NewOwner)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Ticket transferred"})
}

type redeemRequest struct {
	TicketID     string `json:"ticket_id"`
	SenderPubKey string `json:"sender_pubkey"`
	Signature    string `json:"signature"`
}

func HandleRedeem(w http.ResponseWriter, r *http.Request, service *ticketing.Service) {
	var req redeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Failed to decode redeem request: %v", err)
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	if err := service.Redeem(req.TicketID, req.SenderPubKey, req.Signature); err != nil {
		if errors.Is(err, ticketing.ErrInvalidTicket) {
			log.Printf("Redeem rejected for ticket %s: %v", req.TicketID, err)
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid or already redeemed ticket"})
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	log.Printf("Redeemed ticket %s", req.TicketID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Ticket redeemed"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
