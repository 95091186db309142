package convert

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"

	"github.com/olivmath/ultraplonk-verifier/pkg/logger"
)

// ExportGroth16Verifier reads a gnark-serialized Groth16 BN254 verifying key
// and renders the Solidity verifier contract for it.
func (s *convertService) ExportGroth16Verifier(vkData []byte) (ExportVerifierOut, error) {
	convertLogger := logger.Default()

	vk := groth16.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(bytes.NewReader(vkData)); err != nil {
		return ExportVerifierOut{}, fmt.Errorf("read verifying key: %w", err)
	}

	var contract bytes.Buffer
	if err := vk.ExportSolidity(&contract); err != nil {
		return ExportVerifierOut{}, fmt.Errorf("export solidity verifier: %w", err)
	}

	convertLogger.Infof("Exported Groth16 Solidity verifier: %d bytes of source", contract.Len())
	return ExportVerifierOut{ContractSource: contract.String()}, nil
}
