package ledger

import (
	"strings"
	"testing"
)

// minedChain builds a chain with n mined blocks on top of genesis.
func minedChain(t *testing.T, n int) *Chain {
	t.Helper()
	chain := NewChain()
	for i := 0; i < n; i++ {
		chain.AddTransaction(NewTransaction(TxIssue, map[string]any{
			"ticket_id": "t",
			"round":     float64(i),
		}, "", ""))
		if _, err := chain.Mine(); err != nil {
			t.Fatalf("Mine() failed: %v", err)
		}
	}
	return chain
}

func TestVerifyChainAcceptsMinedChain(t *testing.T) {
	chain := minedChain(t, 3)
	if err := VerifyChain(chain.Blocks()); err != nil {
		t.Errorf("VerifyChain() rejected a well-formed chain: %v", err)
	}
}

func TestVerifyChainRejectsTampering(t *testing.T) {
	tests := []struct {
		name        string
		tamper      func(blocks []*Block)
		errContains string
	}{
		{
			name: "modified transaction payload",
			tamper: func(blocks []*Block) {
				blocks[1].Transactions[0].Data["owner"] = "mallory"
			},
			errContains: "stored hash does not match",
		},
		{
			name: "broken linkage",
			tamper: func(blocks []*Block) {
				blocks[2].PrevHash = strings.Repeat("0", 64)
			},
			errContains: "does not link",
		},
		{
			name: "non-sequential index",
			tamper: func(blocks []*Block) {
				blocks[2].Index = 7
			},
			errContains: "has index",
		},
		{
			name: "genesis prev_hash rewritten",
			tamper: func(blocks []*Block) {
				blocks[0].PrevHash = "1"
			},
			errContains: "genesis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := minedChain(t, 2)
			blocks := chain.Blocks()
			tt.tamper(blocks)

			err := VerifyChain(blocks)
			if err == nil {
				t.Fatal("VerifyChain() accepted a tampered chain")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("VerifyChain() error = %v, want error containing %q", err, tt.errContains)
			}
		})
	}
}

func TestVerifyChainRejectsUnsealedBlock(t *testing.T) {
	chain := minedChain(t, 1)
	blocks := chain.Blocks()

	// A block whose hash is internally consistent but unmined: rewrite the
	// nonce until the digest no longer meets the difficulty, then store it.
	block := blocks[1]
	for HashMeetsDifficulty(block.ComputeHash()) {
		block.Nonce++
	}
	block.Hash = block.ComputeHash()

	err := VerifyChain(blocks)
	if err == nil {
		t.Fatal("VerifyChain() accepted a block without proof-of-work")
	}
	if !strings.Contains(err.Error(), "difficulty") {
		t.Errorf("VerifyChain() error = %v, want difficulty violation", err)
	}
}

func TestVerifyChainEmpty(t *testing.T) {
	if err := VerifyChain(nil); err == nil {
		t.Error("VerifyChain() should reject an empty chain")
	}
}
