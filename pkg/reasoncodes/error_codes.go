package reasoncodes

type ReasonCode string

const (
	ErrUnmarshal       ReasonCode = "UnmarshalError"
	ErrPayloadDecode   ReasonCode = "PayloadDecodeError"
	ErrUnknownJobKind  ReasonCode = "UnknownJobKindError"
	ErrProofConversion ReasonCode = "ProofConversionError"
	ErrVkConversion    ReasonCode = "VkConversionError"
)
