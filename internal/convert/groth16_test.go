package convert

import (
	"bytes"
	"strings"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// squareCircuit proves knowledge of X with X*X == Y.
type squareCircuit struct {
	X frontend.Variable
	Y frontend.Variable `gnark:",public"`
}

func (c *squareCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(c.Y, api.Mul(c.X, c.X))
	return nil
}

func TestExportGroth16Verifier(t *testing.T) {
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &squareCircuit{})
	if err != nil {
		t.Fatalf("compile circuit: %v", err)
	}

	_, vk, err := groth16.Setup(ccs)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	var serialized bytes.Buffer
	if _, err := vk.WriteTo(&serialized); err != nil {
		t.Fatalf("serialize verifying key: %v", err)
	}

	service := NewService()
	out, err := service.ExportGroth16Verifier(serialized.Bytes())
	if err != nil {
		t.Fatalf("ExportGroth16Verifier failed: %v", err)
	}

	if !strings.Contains(out.ContractSource, "contract Verifier") {
		t.Error("exported source does not contain the verifier contract")
	}
	if !strings.Contains(out.ContractSource, "pragma solidity") {
		t.Error("exported source does not carry a pragma")
	}
}

func TestExportGroth16VerifierRejectsGarbage(t *testing.T) {
	service := NewService()

	if _, err := service.ExportGroth16Verifier([]byte("junk")); err == nil {
		t.Fatal("expected an error for malformed verifying key bytes")
	}
}
