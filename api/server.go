package api

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"ticketchain/api/handlers"
	"ticketchain/ticketing"
)

// Server is the HTTP front for the ticket ledger.
type Server struct {
	service *ticketing.Service
	addr    string
	router  *mux.Router
}

// NewServer creates an API server bound to one ticketing service.
func NewServer(service *ticketing.Service, addr string) *Server {
	server := &Server{
		service: service,
		addr:    addr,
		router:  mux.NewRouter(),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all HTTP endpoints
func (s *Server) setupRoutes() {
	// Ticket lifecycle
	s.router.HandleFunc("/issue", s.with(handlers.HandleIssue)).Methods(http.MethodPost)
	s.router.HandleFunc("/transfer", s.with(handlers.HandleTransfer)).Methods(http.MethodPost)
	s.router.HandleFunc("/redeem", s.with(handlers.HandleRedeem)).Methods(http.MethodPost)

	// Chain operations
	s.router.HandleFunc("/mine", s.with(handlers.HandleMine)).Methods(http.MethodPost)
	s.router.HandleFunc("/chain", s.with(handlers.HandleChain)).Methods(http.MethodGet)
	s.router.HandleFunc("/validate", s.with(handlers.HandleValidate)).Methods(http.MethodGet)

	// Ticket lookups
	s.router.HandleFunc("/ticket/{ticketId}", s.with(handlers.HandleTicketHistory)).Methods(http.MethodGet)
	s.router.HandleFunc("/verify/{ticketId}", s.with(handlers.HandleVerify)).Methods(http.MethodGet)
}

func (s *Server) with(h func(http.ResponseWriter, *http.Request, *ticketing.Service)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h(w, r, s.service)
	}
}

// Handler exposes the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins serving HTTP requests (blocks forever)
func (s *Server) Start() error {
	log.Printf("Starting HTTP API server on %s", s.addr)
	return http.ListenAndServe(s.addr, s.router)
}
