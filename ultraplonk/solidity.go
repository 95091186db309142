package ultraplonk

// solidityCommitmentOrder is the order the on-chain verifier reads the
// commitments in. It differs from the (alphabetical) serialized order.
var solidityCommitmentOrder = []string{
	"Q_1", "Q_2", "Q_3", "Q_4",
	"Q_M", "Q_C", "Q_ARITHMETIC", "Q_SORT", "Q_ELLIPTIC", "Q_AUX",
	"SIGMA_1", "SIGMA_2", "SIGMA_3", "SIGMA_4",
	"TABLE_1", "TABLE_2", "TABLE_3", "TABLE_4", "TABLE_TYPE",
	"ID_1", "ID_2", "ID_3", "ID_4",
}

// SolidityBytesLen is the fixed size of a Solidity-encoded verification key:
// 50 32-byte words (circuit size, public input count, 23 commitments of two
// coordinate words each, recursive flag, recursive index).
const SolidityBytesLen = (2 + 2*commitmentCount + 2) * WordSize

// SolidityBytes lays the key out as the flat 32-byte-word stream the Solidity
// verifier consumes. The output is deterministic for a given key.
func (vk *VerificationKey) SolidityBytes() []byte {
	out := make([]byte, 0, SolidityBytesLen)

	out = appendUint32Word(out, vk.CircuitSize)
	out = appendUint32Word(out, vk.NumPublicInputs)

	for _, label := range solidityCommitmentOrder {
		point := vk.commitments[label]
		xBytes := point.X.Bytes()
		yBytes := point.Y.Bytes()
		out = append(out, xBytes[:]...)
		out = append(out, yBytes[:]...)
	}

	var flag uint32
	if vk.ContainsRecursiveProof {
		flag = 1
	}
	out = appendUint32Word(out, flag)
	out = appendUint32Word(out, vk.RecursiveProofIndex)

	return out
}

func appendUint32Word(out []byte, v uint32) []byte {
	var word [WordSize]byte
	word[WordSize-4] = byte(v >> 24)
	word[WordSize-3] = byte(v >> 16)
	word[WordSize-2] = byte(v >> 8)
	word[WordSize-1] = byte(v)
	return append(out, word[:]...)
}
