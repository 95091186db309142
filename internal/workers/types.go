package workers

// Job kinds accepted on the conversion queue.
const (
	JobKindProof           = "proof"
	JobKindVerificationKey = "verification_key"
)

type ConversionJobDto struct {
	EventId    string `json:"event_id"`
	Kind       string `json:"kind"`
	PayloadB64 string `json:"payload_b64"`
	NumInputs  int    `json:"num_inputs,omitempty"`
}
