package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// TxType tags a transaction with the kind of ledger event it records.
type TxType string

const (
	TxIssue    TxType = "issue"
	TxTransfer TxType = "transfer"
	TxRedeem   TxType = "redeem"
)

// Transaction is an immutable record of one ledger event. The payload
// shape depends on Type; the ledger never inspects it. SenderPubKey and
// Signature ride through hashing and serialization but are not verified
// anywhere in the core.
type Transaction struct {
	Type         TxType
	Data         map[string]any
	SenderPubKey string
	Signature    string
	Timestamp    float64
}

// NewTransaction builds a transaction with the capture time assigned.
// Construction always succeeds; payload validation is the caller's job.
func NewTransaction(txType TxType, data map[string]any, senderPubKey, signature string) *Transaction {
	return &Transaction{
		Type:         txType,
		Data:         data,
		SenderPubKey: senderPubKey,
		Signature:    signature,
		Timestamp:    now(),
	}
}

// Record returns the canonical field mapping used both for external
// serialization and as hash input. Absent key material maps to null.
func (t *Transaction) Record() map[string]any {
	return map[string]any{
		"tx_type":       string(t.Type),
		"data":          t.Data,
		"sender_pubkey": nullable(t.SenderPubKey),
		"signature":     nullable(t.Signature),
		"timestamp":     t.Timestamp,
	}
}

// ComputeHash returns the lowercase hex SHA-256 digest of the canonical
// record. The timestamp is part of the input, so two transactions with
// identical payloads but different construction instants hash differently.
func (t *Transaction) ComputeHash() string {
	return hashRecord(t.Record())
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// hashRecord digests the JSON encoding of a record. encoding/json writes
// map keys in sorted order at every nesting level, so the byte stream is
// deterministic regardless of map iteration order.
func hashRecord(record map[string]any) string {
	raw, _ := json.Marshal(record)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func now() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}
