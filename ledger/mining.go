package ledger

import (
	"errors"
	"strings"
)

// Difficulty is the number of leading zero hex characters a sealed block
// hash must carry. Process-wide constant; mean attempts grow as
// 16^Difficulty.
const Difficulty = 2

// maxMineAttempts bounds the nonce search. At difficulty 2 the expected
// search is around 256 attempts, so hitting the cap means something is
// wrong with the content being mined, not bad luck.
const maxMineAttempts = 1 << 26

// ErrMiningBudget is returned when the nonce search exhausts its attempt
// budget without finding a qualifying digest.
var ErrMiningBudget = errors.New("proof-of-work attempt budget exhausted")

var difficultyPrefix = strings.Repeat("0", Difficulty)

// HashMeetsDifficulty reports whether a hex digest satisfies the
// leading-zero difficulty predicate.
func HashMeetsDifficulty(hash string) bool {
	return strings.HasPrefix(hash, difficultyPrefix)
}

// MineCorrectNonce searches nonces from zero until the block's digest
// meets the difficulty predicate, returning the winning digest. The
// block's nonce is left at the winning value.
func MineCorrectNonce(block *Block) (string, error) {
	block.Nonce = 0
	hash := block.ComputeHash()
	for attempts := 0; !HashMeetsDifficulty(hash); attempts++ {
		if attempts >= maxMineAttempts {
			return "", ErrMiningBudget
		}
		block.Nonce++
		hash = block.ComputeHash()
	}
	return hash, nil
}
