package models

import "encoding/json"

// TxValue is the amount envelope the provider emits for each transaction.
// The hex string is passed through untouched; this service never does
// arithmetic on it.
type TxValue struct {
	Hex string `json:"hex"`
}

// Transaction is one executable transaction descriptor from the provider.
type Transaction struct {
	To    string  `json:"to"`
	Data  string  `json:"data"`
	Value TxValue `json:"value"`
}

// Calldata is the executable payload returned once at payment creation.
// It is never persisted; the creating caller consumes it immediately.
type Calldata struct {
	Transactions []Transaction   `json:"transactions"`
	Metadata     json.RawMessage `json:"metadata"`
}
