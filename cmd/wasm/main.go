//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-btc-ecc/internal/crypto/address"
	"github.com/smallyu/go-btc-ecc/internal/crypto/ecdsa"
	"github.com/smallyu/go-btc-ecc/pkg/btc"
	"github.com/smallyu/go-btc-ecc/pkg/ecc"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go BTC-ECC WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoBTCECC", map[string]interface{}{
		"Key":      js.FuncOf(Key),
		"Sign":     js.FuncOf(Sign),
		"CheckSig": js.FuncOf(CheckSig),
	})

	<-c
}

// KeyInput is the JSON argument of Key.
type KeyInput struct {
	Secret     string `json:"secret"` // Hex encoded
	Compressed bool   `json:"compressed"`
	Testnet    bool   `json:"testnet"`
}

// Key derives the public encodings of a private key.
// Arguments:
// 0: JSON string of KeyInput
// Returns:
// JSON object { sec, address, wif } or an error string
func Key(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonParams)"
	}

	var input KeyInput
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	key, err := parseKey(input.Secret)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	net := ecc.NetParams(input.Testnet)
	addr, err := address.P2PKH(key.PublicKey(), input.Compressed, net)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	sec := key.PublicKey().SerializeUncompressed()
	if input.Compressed {
		sec = key.PublicKey().SerializeCompressed()
	}

	return marshal(map[string]interface{}{
		"sec":     hex.EncodeToString(sec),
		"address": addr,
		"wif":     key.WIF(input.Compressed, net),
	})
}

// Sign produces a deterministic signature.
// Arguments:
// 0: Secret (hex)
// 1: Message integer z (hex)
// Returns:
// JSON object { r, s, der } or an error string
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (secret, z)"
	}

	key, err := parseKey(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	z, err := parseHexInt(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	sig, err := key.Sign(z)
	if err != nil {
		return fmt.Sprintf("error: sign failed: %v", err)
	}

	// Hex strings keep 256-bit integers intact on the JS side.
	return marshal(map[string]interface{}{
		"r":   sig.R().Text(16),
		"s":   sig.S().Text(16),
		"der": hex.EncodeToString(sig.DER()),
	})
}

// CheckSig verifies a DER signature against a SEC public key.
// Arguments:
// 0: SEC public key (hex)
// 1: DER signature (hex)
// 2: Message integer z (hex)
// Returns:
// bool or an error string
func CheckSig(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (sec, der, z)"
	}

	sec, err := hex.DecodeString(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: invalid hex sec: %v", err)
	}
	der, err := hex.DecodeString(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: invalid hex der: %v", err)
	}
	z, err := parseHexInt(args[2].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	ok, err := btc.CheckSig(sec, der, z)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return ok
}

// Helpers

func parseKey(secretHex string) (*ecdsa.PrivateKey, error) {
	secret, err := parseHexInt(secretHex)
	if err != nil {
		return nil, err
	}
	return ecdsa.NewPrivateKey(secret)
}

func parseHexInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex integer %q", s)
	}
	return v, nil
}

func marshal(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: marshal failed: %v", err)
	}
	return string(b)
}
