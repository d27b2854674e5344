package ledger

// Block is an ordered batch of transactions linked to its predecessor by
// hash and sealed by a proof-of-work nonce.
type Block struct {
	Index        uint64
	Transactions []*Transaction
	Timestamp    float64
	PrevHash     string
	Nonce        uint64

	// Hash is the sealed digest, set once by mining (or directly at
	// genesis construction) and never recomputed into afterwards.
	Hash string
}

// NewBlock builds an unsealed block with the capture time assigned and
// nonce zero. Transaction order is preserved and is part of the digest.
func NewBlock(index uint64, transactions []*Transaction, prevHash string) *Block {
	return &Block{
		Index:        index,
		Transactions: transactions,
		Timestamp:    now(),
		PrevHash:     prevHash,
	}
}

// ComputeHash returns the live digest of the block contents at the
// current nonce. Transactions serialize through their own Record,
// preserving nested determinism.
func (b *Block) ComputeHash() string {
	records := make([]map[string]any, len(b.Transactions))
	for i, tx := range b.Transactions {
		records[i] = tx.Record()
	}
	return hashRecord(map[string]any{
		"index":        b.Index,
		"transactions": records,
		"timestamp":    b.Timestamp,
		"prev_hash":    b.PrevHash,
		"nonce":        b.Nonce,
	})
}
