package ledger

// Chain owns the ordered block sequence and the FIFO buffer of pending
// transactions. It is not goroutine-safe; the ticketing service
// serializes all access to it.
type Chain struct {
	blocks  []*Block
	pending []*Transaction
}

// NewChain creates a chain holding only the genesis block. Genesis links
// to "0", carries no transactions and is exempt from the difficulty rule:
// its stored hash is the plain content digest.
func NewChain() *Chain {
	genesis := NewBlock(0, []*Transaction{}, "0")
	genesis.Hash = genesis.ComputeHash()
	return &Chain{blocks: []*Block{genesis}}
}

// AddTransaction appends to the pending buffer. Always succeeds; business
// rules are checked by the caller against the registry beforehand.
func (c *Chain) AddTransaction(tx *Transaction) {
	c.pending = append(c.pending, tx)
}

// Mine batches all pending transactions into a new block, seals it with
// proof-of-work, appends it and clears the buffer. Returns nil, nil when
// there is nothing to mine. The new block links to the tip's stored
// sealed hash.
func (c *Chain) Mine() (*Block, error) {
	if len(c.pending) == 0 {
		return nil, nil
	}

	tip := c.blocks[len(c.blocks)-1]
	block := NewBlock(uint64(len(c.blocks)), c.pending, tip.Hash)

	hash, err := MineCorrectNonce(block)
	if err != nil {
		return nil, err
	}
	block.Hash = hash

	c.blocks = append(c.blocks, block)
	c.pending = nil
	return block, nil
}

// Tip returns the most recent block.
func (c *Chain) Tip() *Block {
	return c.blocks[len(c.blocks)-1]
}

// Blocks returns the chain as a copied slice. The blocks themselves are
// shared and must be treated as sealed.
func (c *Chain) Blocks() []*Block {
	out := make([]*Block, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// PendingCount reports how many transactions await inclusion.
func (c *Chain) PendingCount() int {
	return len(c.pending)
}
