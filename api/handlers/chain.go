package handlers

import (
	"fmt"
	"log"
	"net/http"

	"ticketchain/ledger"
	"ticketchain/ticketing"
)

// HandleChain returns the full block sequence for inspection. Hashes in
// the view are recomputed live from block contents rather than read from
// the sealed field.
func HandleChain(w http.ResponseWriter, r *http.Request, service *ticketing.Service) {
	blocks := service.ChainBlocks()

	view := make([]map[string]any, len(blocks))
	for i, block := range blocks {
		view[i] = map[string]any{
			"index":        block.Index,
			"transactions": transactionRecords(block),
			"timestamp":    block.Timestamp,
			"prev_hash":    block.PrevHash,
			"hash":         block.ComputeHash(),
		}
	}

	writeJSON(w, http.StatusOK, view)
}

func HandleMine(w http.ResponseWriter, r *http.Request, service *ticketing.Service) {
	block, err := service.MineBlock()
	if err != nil {
		log.Printf("Mining failed: %v", err)
		http.Error(w, fmt.Sprintf("Mining failed: %v", err), http.StatusInternalServerError)
		return
	}

	if block == nil {
		writeJSON(w, http.StatusOK, map[string]string{"message": "No transactions to mine"})
		return
	}

	log.Printf("Mined block %d with %d transactions, hash %s", block.Index, len(block.Transactions), block.Hash)
	writeJSON(w, http.StatusOK, map[string]any{
		"index":        block.Index,
		"transactions": transactionRecords(block),
		"hash":         block.Hash,
	})
}

// HandleValidate runs the chain integrity walk.
func HandleValidate(w http.ResponseWriter, r *http.Request, service *ticketing.Service) {
	if err := service.Verify(); err != nil {
		log.Printf("Chain validation failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"valid": true})
}

func transactionRecords(block *ledger.Block) []map[string]any {
	records := make([]map[string]any, len(block.Transactions))
	for i, tx := range block.Transactions {
		records[i] = tx.Record()
	}
	return records
}
