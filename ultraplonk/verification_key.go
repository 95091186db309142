package ultraplonk

import (
	"encoding/binary"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

const (
	// CircuitTypeUltraPlonk is the circuit type tag carried by serialized
	// UltraPlonk verification keys.
	CircuitTypeUltraPlonk = 2

	commitmentCount = 23
	coordinateSize  = 32
)

// commitmentLabels is the full label set a serialized verification key must
// carry, one commitment each.
var commitmentLabels = []string{
	"ID_1", "ID_2", "ID_3", "ID_4",
	"Q_1", "Q_2", "Q_3", "Q_4",
	"Q_ARITHMETIC", "Q_AUX", "Q_C", "Q_ELLIPTIC", "Q_M", "Q_SORT",
	"SIGMA_1", "SIGMA_2", "SIGMA_3", "SIGMA_4",
	"TABLE_1", "TABLE_2", "TABLE_3", "TABLE_4", "TABLE_TYPE",
}

// VerificationKey is a parsed UltraPlonk verification key over BN254.
type VerificationKey struct {
	CircuitType     uint32
	CircuitSize     uint32
	NumPublicInputs uint32

	commitments map[string]bn254.G1Affine

	ContainsRecursiveProof bool
	RecursiveProofIndex    uint32
}

// Commitment returns the commitment point stored under label.
func (vk *VerificationKey) Commitment(label string) (bn254.G1Affine, bool) {
	point, ok := vk.commitments[label]
	return point, ok
}

// ParseVerificationKey decodes the serialized form of an UltraPlonk
// verification key. All integers are big-endian; every commitment is a
// label-prefixed uncompressed BN254 G1 point.
func ParseVerificationKey(vkData []byte) (*VerificationKey, error) {
	r := &vkReader{data: vkData}
	vk := &VerificationKey{commitments: make(map[string]bn254.G1Affine, commitmentCount)}

	circuitType, err := r.readUint32("circuit type")
	if err != nil {
		return nil, err
	}
	if circuitType != CircuitTypeUltraPlonk {
		return nil, parseError("circuit type %d is not UltraPlonk (%d)", circuitType, CircuitTypeUltraPlonk)
	}
	vk.CircuitType = circuitType

	if vk.CircuitSize, err = r.readUint32("circuit size"); err != nil {
		return nil, err
	}
	if vk.CircuitSize == 0 || vk.CircuitSize&(vk.CircuitSize-1) != 0 {
		return nil, parseError("circuit size %d is not a power of two", vk.CircuitSize)
	}

	if vk.NumPublicInputs, err = r.readUint32("public input count"); err != nil {
		return nil, err
	}

	count, err := r.readUint32("commitment count")
	if err != nil {
		return nil, err
	}
	if count != commitmentCount {
		return nil, parseError("expected %d commitments, got %d", commitmentCount, count)
	}

	for i := 0; i < commitmentCount; i++ {
		label, point, err := r.readCommitment()
		if err != nil {
			return nil, err
		}
		if !knownLabel(label) {
			return nil, parseError("unknown commitment label %q", label)
		}
		if _, dup := vk.commitments[label]; dup {
			return nil, parseError("duplicate commitment label %q", label)
		}
		vk.commitments[label] = point
	}

	flag, err := r.readByte("recursive proof flag")
	if err != nil {
		return nil, err
	}
	switch flag {
	case 0:
		vk.ContainsRecursiveProof = false
	case 1:
		vk.ContainsRecursiveProof = true
	default:
		return nil, parseError("recursive proof flag must be 0 or 1, got %d", flag)
	}

	if vk.RecursiveProofIndex, err = r.readUint32("recursive proof index"); err != nil {
		return nil, err
	}

	if r.remaining() != 0 {
		return nil, parseError("%d trailing bytes after verification key", r.remaining())
	}

	return vk, nil
}

func knownLabel(label string) bool {
	for _, known := range commitmentLabels {
		if label == known {
			return true
		}
	}
	return false
}

func parseError(format string, v ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidVerificationKey, fmt.Sprintf(format, v...))
}

// vkReader walks the serialized key, keeping enough position context for
// useful truncation errors.
type vkReader struct {
	data []byte
	off  int
}

func (r *vkReader) remaining() int {
	return len(r.data) - r.off
}

func (r *vkReader) take(n int, what string) ([]byte, error) {
	if r.remaining() < n {
		return nil, parseError("truncated reading %s at offset %d", what, r.off)
	}
	chunk := r.data[r.off : r.off+n]
	r.off += n
	return chunk, nil
}

func (r *vkReader) readUint32(what string) (uint32, error) {
	chunk, err := r.take(4, what)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(chunk), nil
}

func (r *vkReader) readByte(what string) (byte, error) {
	chunk, err := r.take(1, what)
	if err != nil {
		return 0, err
	}
	return chunk[0], nil
}

func (r *vkReader) readCommitment() (string, bn254.G1Affine, error) {
	var point bn254.G1Affine

	labelLen, err := r.readUint32("commitment label length")
	if err != nil {
		return "", point, err
	}
	if labelLen == 0 || labelLen > 32 {
		return "", point, parseError("commitment label length %d out of range", labelLen)
	}

	labelBytes, err := r.take(int(labelLen), "commitment label")
	if err != nil {
		return "", point, err
	}
	label := string(labelBytes)

	xBytes, err := r.take(coordinateSize, fmt.Sprintf("%s x coordinate", label))
	if err != nil {
		return "", point, err
	}
	yBytes, err := r.take(coordinateSize, fmt.Sprintf("%s y coordinate", label))
	if err != nil {
		return "", point, err
	}

	var x, y fp.Element
	if err := x.SetBytesCanonical(xBytes); err != nil {
		return "", point, parseError("%s x coordinate not a canonical field element", label)
	}
	if err := y.SetBytesCanonical(yBytes); err != nil {
		return "", point, parseError("%s y coordinate not a canonical field element", label)
	}

	point.X = x
	point.Y = y
	if !point.IsOnCurve() {
		return "", point, parseError("%s commitment is not on the BN254 curve", label)
	}

	return label, point, nil
}
