package dto

import (
	"github.com/olivmath/ultraplonk-verifier/pkg/reasoncodes"
	"github.com/olivmath/ultraplonk-verifier/pkg/utilities"
)

type ConversionResultDto struct {
	EventId      string   `json:"event_id"`
	Kind         string   `json:"kind"`
	Hex          string   `json:"hex"`
	PublicInputs []string `json:"public_inputs,omitempty"`
}

func (cr ConversionResultDto) Serialize() ([]byte, error) {
	return utilities.Serialize[ConversionResultDto](cr)
}

type ConversionFailureDto struct {
	EventId     string                 `json:"event_id"`
	RequestBody []byte                 `json:"request_body"`
	Error       string                 `json:"error"`
	ReasonCode  reasoncodes.ReasonCode `json:"reason_code"`
}

func (cf ConversionFailureDto) Serialize() ([]byte, error) {
	return utilities.Serialize[ConversionFailureDto](cf)
}
