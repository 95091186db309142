package ultraplonk_test

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"

	"github.com/olivmath/ultraplonk-verifier/ultraplonk"
)

// vkLabels mirrors the serialized (alphabetical) commitment order.
var vkLabels = []string{
	"ID_1", "ID_2", "ID_3", "ID_4",
	"Q_1", "Q_2", "Q_3", "Q_4",
	"Q_ARITHMETIC", "Q_AUX", "Q_C", "Q_ELLIPTIC", "Q_M", "Q_SORT",
	"SIGMA_1", "SIGMA_2", "SIGMA_3", "SIGMA_4",
	"TABLE_1", "TABLE_2", "TABLE_3", "TABLE_4", "TABLE_TYPE",
}

func vkPoint(scalar int64) bn254.G1Affine {
	_, _, g1Aff, _ := bn254.Generators()

	var point bn254.G1Affine
	point.ScalarMultiplication(&g1Aff, big.NewInt(scalar))
	return point
}

type vkEncoder struct {
	buf bytes.Buffer
}

func (e *vkEncoder) u32(v uint32) {
	var chunk [4]byte
	binary.BigEndian.PutUint32(chunk[:], v)
	e.buf.Write(chunk[:])
}

func (e *vkEncoder) commitment(label string, point bn254.G1Affine) {
	e.u32(uint32(len(label)))
	e.buf.WriteString(label)
	xBytes := point.X.Bytes()
	yBytes := point.Y.Bytes()
	e.buf.Write(xBytes[:])
	e.buf.Write(yBytes[:])
}

// buildVKBytes serializes a structurally valid key: circuit size 4096,
// two public inputs, distinct generator multiples as commitments.
func buildVKBytes() []byte {
	var e vkEncoder
	e.u32(ultraplonk.CircuitTypeUltraPlonk)
	e.u32(4096)
	e.u32(2)
	e.u32(uint32(len(vkLabels)))
	for i, label := range vkLabels {
		e.commitment(label, vkPoint(int64(i+1)))
	}
	e.buf.WriteByte(0)
	e.u32(0)
	return e.buf.Bytes()
}

func TestParseVerificationKeyFields(t *testing.T) {
	vk, err := ultraplonk.ParseVerificationKey(buildVKBytes())
	if err != nil {
		t.Fatalf("ParseVerificationKey failed: %v", err)
	}

	if vk.CircuitType != ultraplonk.CircuitTypeUltraPlonk {
		t.Errorf("circuit type = %d, want %d", vk.CircuitType, ultraplonk.CircuitTypeUltraPlonk)
	}
	if vk.CircuitSize != 4096 {
		t.Errorf("circuit size = %d, want 4096", vk.CircuitSize)
	}
	if vk.NumPublicInputs != 2 {
		t.Errorf("public input count = %d, want 2", vk.NumPublicInputs)
	}
	if vk.ContainsRecursiveProof {
		t.Error("recursive proof flag should be unset")
	}

	for i, label := range vkLabels {
		point, ok := vk.Commitment(label)
		if !ok {
			t.Fatalf("commitment %q missing after parse", label)
		}
		want := vkPoint(int64(i + 1))
		if !point.Equal(&want) {
			t.Errorf("commitment %q does not match the serialized point", label)
		}
	}
}

func TestParseVerificationKeyRecursiveFlag(t *testing.T) {
	data := buildVKBytes()
	data[len(data)-5] = 1
	binary.BigEndian.PutUint32(data[len(data)-4:], 7)

	vk, err := ultraplonk.ParseVerificationKey(data)
	if err != nil {
		t.Fatalf("ParseVerificationKey failed: %v", err)
	}
	if !vk.ContainsRecursiveProof {
		t.Error("recursive proof flag should be set")
	}
	if vk.RecursiveProofIndex != 7 {
		t.Errorf("recursive proof index = %d, want 7", vk.RecursiveProofIndex)
	}
}

func TestConvertVerificationKeyDeterministic(t *testing.T) {
	data := buildVKBytes()

	first, err := ultraplonk.ConvertVerificationKey(data)
	if err != nil {
		t.Fatalf("ConvertVerificationKey failed: %v", err)
	}
	second, err := ultraplonk.ConvertVerificationKey(data)
	if err != nil {
		t.Fatalf("ConvertVerificationKey failed on second call: %v", err)
	}

	if first != second {
		t.Error("conversion is not deterministic")
	}
	if len(first) != 2*ultraplonk.SolidityBytesLen {
		t.Errorf("hex length = %d, want %d", len(first), 2*ultraplonk.SolidityBytesLen)
	}
}

func TestSolidityBytesLayout(t *testing.T) {
	vk, err := ultraplonk.ParseVerificationKey(buildVKBytes())
	if err != nil {
		t.Fatalf("ParseVerificationKey failed: %v", err)
	}

	out := vk.SolidityBytes()
	if len(out) != ultraplonk.SolidityBytesLen {
		t.Fatalf("SolidityBytes length = %d, want %d", len(out), ultraplonk.SolidityBytesLen)
	}

	word := func(i int) []byte {
		return out[i*ultraplonk.WordSize : (i+1)*ultraplonk.WordSize]
	}

	if binary.BigEndian.Uint32(word(0)[28:]) != vk.CircuitSize {
		t.Error("word 0 does not carry the circuit size")
	}
	if binary.BigEndian.Uint32(word(1)[28:]) != vk.NumPublicInputs {
		t.Error("word 1 does not carry the public input count")
	}

	// Q_1 leads the verifier order: its coordinates occupy words 2 and 3.
	q1, _ := vk.Commitment("Q_1")
	xBytes := q1.X.Bytes()
	yBytes := q1.Y.Bytes()
	if !bytes.Equal(word(2), xBytes[:]) || !bytes.Equal(word(3), yBytes[:]) {
		t.Error("Q_1 coordinates are not at words 2 and 3")
	}

	// ID_4 closes the commitment block.
	id4, _ := vk.Commitment("ID_4")
	xBytes = id4.X.Bytes()
	yBytes = id4.Y.Bytes()
	lastCommitmentWord := 2 + 2*len(vkLabels) - 2
	if !bytes.Equal(word(lastCommitmentWord), xBytes[:]) || !bytes.Equal(word(lastCommitmentWord+1), yBytes[:]) {
		t.Error("ID_4 coordinates are not at the end of the commitment block")
	}
}

func TestParseVerificationKeyRejectsMalformedInput(t *testing.T) {
	valid := buildVKBytes()

	mutate := func(fn func([]byte) []byte) []byte {
		data := append([]byte(nil), valid...)
		return fn(data)
	}

	cases := []struct {
		name string
		data []byte
	}{
		{"empty input", nil},
		{"wrong circuit type", mutate(func(d []byte) []byte {
			binary.BigEndian.PutUint32(d[0:], 1)
			return d
		})},
		{"circuit size not a power of two", mutate(func(d []byte) []byte {
			binary.BigEndian.PutUint32(d[4:], 4095)
			return d
		})},
		{"zero circuit size", mutate(func(d []byte) []byte {
			binary.BigEndian.PutUint32(d[4:], 0)
			return d
		})},
		{"wrong commitment count", mutate(func(d []byte) []byte {
			binary.BigEndian.PutUint32(d[12:], 22)
			return d
		})},
		{"unknown commitment label", mutate(func(d []byte) []byte {
			// first label is ID_1 at offset 20
			copy(d[20:], "XX_1")
			return d
		})},
		{"duplicate commitment label", mutate(func(d []byte) []byte {
			// second label is ID_2 at offset 92; rewrite it to ID_1
			copy(d[92:], "ID_1")
			return d
		})},
		{"truncated key", valid[:len(valid)-3]},
		{"trailing bytes", append(append([]byte(nil), valid...), 0xAA)},
		{"bad recursive flag", mutate(func(d []byte) []byte {
			d[len(d)-5] = 2
			return d
		})},
	}

	for _, tc := range cases {
		_, err := ultraplonk.ParseVerificationKey(tc.data)
		if !errors.Is(err, ultraplonk.ErrInvalidVerificationKey) {
			t.Errorf("%s: expected ErrInvalidVerificationKey, got %v", tc.name, err)
		}
	}
}

func TestParseVerificationKeyRejectsOffCurvePoint(t *testing.T) {
	var e vkEncoder
	e.u32(ultraplonk.CircuitTypeUltraPlonk)
	e.u32(16)
	e.u32(0)
	e.u32(uint32(len(vkLabels)))
	for i, label := range vkLabels {
		if label == "Q_M" {
			// (1, 1) is canonical but not on the curve
			e.u32(uint32(len(label)))
			e.buf.WriteString(label)
			var one fp.Element
			one.SetOne()
			oneBytes := one.Bytes()
			e.buf.Write(oneBytes[:])
			e.buf.Write(oneBytes[:])
			continue
		}
		e.commitment(label, vkPoint(int64(i+1)))
	}
	e.buf.WriteByte(0)
	e.u32(0)

	_, err := ultraplonk.ParseVerificationKey(e.buf.Bytes())
	if !errors.Is(err, ultraplonk.ErrInvalidVerificationKey) {
		t.Fatalf("expected ErrInvalidVerificationKey, got %v", err)
	}
}

func TestParseVerificationKeyRejectsNonCanonicalCoordinate(t *testing.T) {
	var e vkEncoder
	e.u32(ultraplonk.CircuitTypeUltraPlonk)
	e.u32(16)
	e.u32(0)
	e.u32(uint32(len(vkLabels)))
	for i, label := range vkLabels {
		if i == 0 {
			e.u32(uint32(len(label)))
			e.buf.WriteString(label)
			var modulus [32]byte
			fp.Modulus().FillBytes(modulus[:])
			e.buf.Write(modulus[:])
			e.buf.Write(modulus[:])
			continue
		}
		e.commitment(label, vkPoint(int64(i+1)))
	}
	e.buf.WriteByte(0)
	e.u32(0)

	_, err := ultraplonk.ParseVerificationKey(e.buf.Bytes())
	if !errors.Is(err, ultraplonk.ErrInvalidVerificationKey) {
		t.Fatalf("expected ErrInvalidVerificationKey, got %v", err)
	}
}

func TestConvertVerificationKeyMatchesSolidityBytes(t *testing.T) {
	data := buildVKBytes()

	vk, err := ultraplonk.ParseVerificationKey(data)
	if err != nil {
		t.Fatalf("ParseVerificationKey failed: %v", err)
	}

	converted, err := ultraplonk.ConvertVerificationKey(data)
	if err != nil {
		t.Fatalf("ConvertVerificationKey failed: %v", err)
	}

	if converted != hex.EncodeToString(vk.SolidityBytes()) {
		t.Error("ConvertVerificationKey does not match hex(SolidityBytes())")
	}
}
