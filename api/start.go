package api

import (
	"ticketchain/ticketing"
)

// StartNode builds a fresh ticketing engine and serves the HTTP API on
// addr (blocks forever). Convenience entry used by cmd/node.
func StartNode(addr string) error {
	service := ticketing.NewService()
	return NewServer(service, addr).Start()
}
