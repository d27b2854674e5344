package ledger

import "testing"

func TestHashMeetsDifficulty(t *testing.T) {
	tests := []struct {
		name string
		hash string
		want bool
	}{
		{
			name: "two leading zeros meets difficulty 2",
			hash: "00ab4026e5",
			want: true,
		},
		{
			name: "one leading zero does not meet difficulty 2",
			hash: "0ab14026e5",
			want: false,
		},
		{
			name: "no leading zeros",
			hash: "ffab4026e5",
			want: false,
		},
		{
			name: "all zero digest meets difficulty",
			hash: "0000000000",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HashMeetsDifficulty(tt.hash)
			if got != tt.want {
				t.Errorf("HashMeetsDifficulty(%q) = %v, want %v", tt.hash, got, tt.want)
			}
		})
	}
}

func TestMineCorrectNonce(t *testing.T) {
	tx := NewTransaction(TxIssue, map[string]any{"ticket_id": "abc-123"}, "", "")
	block := NewBlock(1, []*Transaction{tx}, "00aa")

	hash, err := MineCorrectNonce(block)
	if err != nil {
		t.Fatalf("MineCorrectNonce() failed: %v", err)
	}

	if !HashMeetsDifficulty(hash) {
		t.Errorf("Mined hash %s does not meet difficulty %d", hash, Difficulty)
	}
	if hash != block.ComputeHash() {
		t.Errorf("Returned digest %s does not match recomputation at nonce %d", hash, block.Nonce)
	}
}
