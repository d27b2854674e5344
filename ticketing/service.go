// Package ticketing exposes the ticket ledger operations: issuing,
// transferring and redeeming tickets, mining pending transactions into
// blocks, and querying projected ticket state.
package ticketing

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"ticketchain/ledger"
)

// ErrInvalidTicket is returned when an operation references a ticket that
// is unknown or no longer valid. No ledger mutation happens in that case.
var ErrInvalidTicket = errors.New("invalid ticket")

// Service owns the chain and the ticket registry and serializes every
// operation on them. Registry updates are applied at submission time,
// before the transaction is mined, so projected state runs ahead of the
// sealed chain.
type Service struct {
	mu       sync.Mutex
	chain    *ledger.Chain
	registry *ledger.TicketRegistry
}

func NewService() *Service {
	return &Service{
		chain:    ledger.NewChain(),
		registry: ledger.NewTicketRegistry(),
	}
}

// Issue creates a fresh ticket id, appends an issue transaction for it
// and registers the ticket as valid. It cannot fail; payload validation
// is the caller's job.
func (s *Service) Issue(event, owner string, price float64, issuerPubKey, issuerSignature string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticketID := uuid.NewString()
	tx := ledger.NewTransaction(ledger.TxIssue, map[string]any{
		"ticket_id": ticketID,
		"event":     event,
		"owner":     owner,
		"price":     price,
	}, issuerPubKey, issuerSignature)

	s.chain.AddTransaction(tx)
	s.registry.Record(ticketID, owner, ledger.StatusValid)
	return ticketID
}

// Transfer moves a valid ticket to a new owner. Status stays valid.
func (s *Service) Transfer(ticketID, newOwner, senderPubKey, signature string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, ok := s.registry.Lookup(ticketID)
	if !ok || ticket.Status != ledger.StatusValid {
		return ErrInvalidTicket
	}

	tx := ledger.NewTransaction(ledger.TxTransfer, map[string]any{
		"ticket_id": ticketID,
		"new_owner": newOwner,
	}, senderPubKey, signature)

	s.chain.AddTransaction(tx)
	s.registry.Record(ticketID, newOwner, ledger.StatusValid)
	return nil
}

// Redeem marks a valid ticket as redeemed, keeping its owner.
func (s *Service) Redeem(ticketID, senderPubKey, signature string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, ok := s.registry.Lookup(ticketID)
	if !ok || ticket.Status != ledger.StatusValid {
		return ErrInvalidTicket
	}

	tx := ledger.NewTransaction(ledger.TxRedeem, map[string]any{
		"ticket_id": ticketID,
	}, senderPubKey, signature)

	s.chain.AddTransaction(tx)
	s.registry.Record(ticketID, ticket.Owner, ledger.StatusRedeemed)
	return nil
}

// MineBlock seals all pending transactions into a new block. A nil block
// with nil error means there was nothing to mine.
func (s *Service) MineBlock() (*ledger.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chain.Mine()
}

// ChainBlocks returns a snapshot of the current block sequence.
func (s *Service) ChainBlocks() []*ledger.Block {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chain.Blocks()
}

// TicketHistory returns the records of every mined transaction whose
// payload references the ticket id, in chain order. Pending transactions
// are not included.
func (s *Service) TicketHistory(ticketID string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := []map[string]any{}
	for _, block := range s.chain.Blocks() {
		for _, tx := range block.Transactions {
			if id, ok := tx.Data["ticket_id"].(string); ok && id == ticketID {
				history = append(history, tx.Record())
			}
		}
	}
	return history
}

// VerifyTicket returns the current registry entry for a ticket id.
func (s *Service) VerifyTicket(ticketID string) (ledger.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Lookup(ticketID)
}

// Verify checks the integrity of the sealed chain.
func (s *Service) Verify() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ledger.VerifyChain(s.chain.Blocks())
}
