package convert

import (
	"github.com/olivmath/ultraplonk-verifier/pkg/logger"
	"github.com/olivmath/ultraplonk-verifier/ultraplonk"
)

// Service interface
type ConvertService interface {
	ConvertProof(proofData []byte, numInputs int) (ConvertProofOut, error)
	ConvertVerificationKey(vkData []byte) (ConvertVkOut, error)
	ExportGroth16Verifier(vkData []byte) (ExportVerifierOut, error)
}

type convertService struct{}

// Constructor
func NewService() ConvertService {
	return &convertService{}
}

// ConvertProof strips the public input words and hex-encodes both halves.
func (s *convertService) ConvertProof(proofData []byte, numInputs int) (ConvertProofOut, error) {
	convertLogger := logger.Default()

	proofHex, err := ultraplonk.ConvertProof(proofData, numInputs)
	if err != nil {
		return ConvertProofOut{}, err
	}

	publicInputs, err := ultraplonk.PublicInputs(proofData, numInputs)
	if err != nil {
		return ConvertProofOut{}, err
	}

	convertLogger.Infof("Converted proof: %d bytes in, %d public inputs stripped", len(proofData), numInputs)
	return ConvertProofOut{
		ProofHex:     proofHex,
		PublicInputs: publicInputs,
	}, nil
}

// ConvertVerificationKey parses the UltraPlonk key and hex-encodes its
// Solidity layout.
func (s *convertService) ConvertVerificationKey(vkData []byte) (ConvertVkOut, error) {
	convertLogger := logger.Default()

	vkHex, err := ultraplonk.ConvertVerificationKey(vkData)
	if err != nil {
		return ConvertVkOut{}, err
	}

	convertLogger.Infof("Converted verification key: %d bytes in", len(vkData))
	return ConvertVkOut{VkHex: vkHex}, nil
}
