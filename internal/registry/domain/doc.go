// Package domain holds the registry's entity types and the state-transition
// rules that registry transactions enforce: participant admission, property
// registration and transfer, and supply-chain company registration. Types
// here are plain values; all persistence happens through the ledger.
package domain
