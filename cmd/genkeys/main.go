// Command genkeys generates an ECDSA key pair over NIST P-384 and prints
// both encodings. The node carries submitted signatures as opaque data
// and never verifies them; the pair is for callers that want to attach
// signing material to their requests anyway.
package main

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/hex"
	"log"

	"github.com/pterm/pterm"
)

func main() {
	key, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	if err != nil {
		log.Fatal("Failed to generate key pair: ", err)
	}

	size := (key.Curve.Params().BitSize + 7) / 8

	// Raw encodings: the private scalar, and the public point as X || Y,
	// each coordinate padded to the curve size.
	private := key.D.FillBytes(make([]byte, size))
	public := make([]byte, 0, 2*size)
	public = append(public, key.X.FillBytes(make([]byte, size))...)
	public = append(public, key.Y.FillBytes(make([]byte, size))...)

	pterm.DefaultSection.Println("Ticket ledger key pair (NIST P-384)")
	pterm.Info.Printfln("Private key: %s", hex.EncodeToString(private))
	pterm.Info.Printfln("Public key:  %s", hex.EncodeToString(public))
}
