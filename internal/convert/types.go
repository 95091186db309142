package convert

type ConvertProofIn struct {
	ProofB64  string `json:"proof_b64"`
	NumInputs int    `json:"num_inputs"`
}

type ConvertProofOut struct {
	ProofHex     string   `json:"proof_hex"`
	PublicInputs []string `json:"public_inputs"`
}

type ConvertVkIn struct {
	VkB64 string `json:"vk_b64"`
}

type ConvertVkOut struct {
	VkHex string `json:"vk_hex"`
}

type ExportVerifierOut struct {
	ContractSource string `json:"contract_source"`
}
