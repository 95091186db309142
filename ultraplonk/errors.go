package ultraplonk

import "errors"

var (
	// ErrProofTooShort reports proof data shorter than the declared public
	// input region.
	ErrProofTooShort = errors.New("proof data too short for the declared public input count")

	// ErrInvalidVerificationKey is the base error for every verification key
	// parse failure.
	ErrInvalidVerificationKey = errors.New("invalid verification key")
)
