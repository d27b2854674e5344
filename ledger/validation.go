package ledger

import "fmt"

// VerifyChain walks the full chain and confirms the linkage, sealed-hash
// consistency and proof-of-work validity of every block. Genesis is
// exempt from the difficulty rule but must still match its stored hash.
// The first violation found is reported with its block index.
func VerifyChain(blocks []*Block) error {
	if len(blocks) == 0 {
		return fmt.Errorf("chain has no blocks")
	}

	genesis := blocks[0]
	if genesis.Index != 0 {
		return fmt.Errorf("genesis block has index %d", genesis.Index)
	}
	if genesis.PrevHash != "0" {
		return fmt.Errorf("genesis block prev_hash is %q, want \"0\"", genesis.PrevHash)
	}
	if genesis.Hash != genesis.ComputeHash() {
		return fmt.Errorf("genesis block stored hash does not match contents")
	}

	for i := 1; i < len(blocks); i++ {
		block := blocks[i]
		if block.Index != uint64(i) {
			return fmt.Errorf("block %d has index %d", i, block.Index)
		}
		if block.PrevHash != blocks[i-1].Hash {
			return fmt.Errorf("block %d does not link to its predecessor", i)
		}
		if block.Hash != block.ComputeHash() {
			return fmt.Errorf("block %d stored hash does not match contents", i)
		}
		if !HashMeetsDifficulty(block.Hash) {
			return fmt.Errorf("block %d hash does not meet difficulty %d", i, Difficulty)
		}
	}

	return nil
}
