// Package ultraplonk converts UltraPlonk proof artifacts into the
// hex-encoded forms consumed by EVM (Solidity) verifiers.
package ultraplonk

import (
	"encoding/hex"
	"fmt"
)

// WordSize is the size of a single public input on the proving stack.
const WordSize = 32

// ConvertProof strips the public input region (numInputs 32-byte words
// prepended to the proof) and returns the remaining proof bytes hex-encoded.
func ConvertProof(proofData []byte, numInputs int) (string, error) {
	totalPubInputsLen, err := publicInputsLen(proofData, numInputs)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(proofData[totalPubInputsLen:]), nil
}

// PublicInputs returns the public input region of proofData as hex-encoded
// 32-byte words, in proof order.
func PublicInputs(proofData []byte, numInputs int) ([]string, error) {
	totalPubInputsLen, err := publicInputsLen(proofData, numInputs)
	if err != nil {
		return nil, err
	}

	words := make([]string, 0, numInputs)
	for off := 0; off < totalPubInputsLen; off += WordSize {
		words = append(words, hex.EncodeToString(proofData[off:off+WordSize]))
	}
	return words, nil
}

// ConvertVerificationKey parses a serialized UltraPlonk verification key and
// returns its Solidity byte layout hex-encoded. Parse errors are propagated.
func ConvertVerificationKey(vkData []byte) (string, error) {
	vk, err := ParseVerificationKey(vkData)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(vk.SolidityBytes()), nil
}

func publicInputsLen(proofData []byte, numInputs int) (int, error) {
	if numInputs < 0 {
		return 0, fmt.Errorf("negative public input count %d", numInputs)
	}

	// Compare against the word capacity of proofData: numInputs*WordSize
	// would overflow int for absurd counts.
	if numInputs > len(proofData)/WordSize {
		return 0, ErrProofTooShort
	}
	return numInputs * WordSize, nil
}
