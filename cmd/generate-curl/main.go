package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const baseURL = "http://localhost:5000"

func main() {
	fmt.Println("Generating curl test scripts for the ticket API...")

	if err := os.MkdirAll("curl", 0755); err != nil {
		log.Fatal("Failed to create curl directory:", err)
	}

	lifecycleScript := fmt.Sprintf(`#!/bin/bash
echo "=== Ticket lifecycle: issue -> transfer -> redeem -> mine ==="
echo "Make sure your node is running first!"
echo ""

# Check if server is running
if ! curl -s --connect-timeout 2 --max-time 2 %[1]s/chain > /dev/null; then
    echo "Server not responding on %[1]s"
    echo "Start your node with: go run cmd/node/main.go"
    exit 1
fi

echo "Issuing ticket..."
TICKET_ID=$(curl -s -X POST %[1]s/issue \
  -H "Content-Type: application/json" \
  -d '{"event": "concert", "owner": "alice", "price": 10}' \
  | jq -r '.ticket_id')
echo "Ticket: $TICKET_ID"
echo ""

echo "Transferring to bob..."
curl -s -X POST %[1]s/transfer \
  -H "Content-Type: application/json" \
  -d "{\"ticket_id\": \"$TICKET_ID\", \"new_owner\": \"bob\"}" | jq '.'
echo ""

echo "Redeeming..."
curl -s -X POST %[1]s/redeem \
  -H "Content-Type: application/json" \
  -d "{\"ticket_id\": \"$TICKET_ID\"}" | jq '.'
echo ""

echo "Mining pending transactions..."
curl -s -X POST %[1]s/mine | jq '.'
echo ""

echo "Ticket history:"
curl -s %[1]s/ticket/$TICKET_ID | jq '.'
echo ""

echo "Verification result:"
curl -s %[1]s/verify/$TICKET_ID | jq '.'
echo ""
`, baseURL)

	chainScript := fmt.Sprintf(`#!/bin/bash
echo "=== Chain inspection ==="
echo ""

echo "Full chain:"
curl -s --connect-timeout 2 --max-time 2 %[1]s/chain | jq '.' 2>/dev/null || cat
echo ""

echo "Integrity check:"
curl -s --connect-timeout 2 --max-time 2 %[1]s/validate | jq '.' 2>/dev/null || cat
echo ""
`, baseURL)

	emptyMineScript := fmt.Sprintf(`#!/bin/bash
echo "=== Mining with an empty pending buffer ==="
echo ""

curl -s -X POST --connect-timeout 2 --max-time 2 %[1]s/mine | jq '.' 2>/dev/null || cat
echo ""
`, baseURL)

	scripts := map[string]string{
		"curl/ticket_lifecycle.sh": lifecycleScript,
		"curl/inspect_chain.sh":    chainScript,
		"curl/mine_empty.sh":       emptyMineScript,
	}

	for filename, content := range scripts {
		if err := writeScript(filename, content); err != nil {
			log.Fatalf("Failed to write script %s: %v", filename, err)
		}
		fmt.Printf("Generated: %s\n", filename)
	}

	fmt.Println("\nUsage:")
	fmt.Println("  1. Start your node: go run cmd/node/main.go")
	fmt.Println("  2. Run the lifecycle: ./curl/ticket_lifecycle.sh")
	fmt.Println("  3. Inspect the chain: ./curl/inspect_chain.sh")
}

func writeScript(filename, content string) error {
	// Ensure the directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Write the file
	if err := os.WriteFile(filename, []byte(content), 0755); err != nil {
		return err
	}

	return nil
}
