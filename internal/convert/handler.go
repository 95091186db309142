package convert

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/olivmath/ultraplonk-verifier/ultraplonk"
)

type Handler struct {
	Service ConvertService
}

func NewHandler(service ConvertService) *Handler {
	return &Handler{Service: service}
}

// ConvertProof godoc
// @Summary      Convert an UltraPlonk proof
// @Description  Strips the prepended public input words and hex-encodes the proof
// @Tags         Convert
// @Accept       json
// @Produce      json
// @Param        body  body      object{proof_b64=string,num_inputs=int}  true  "Proof bytes (base64) and public input count"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/convert/proof [post]
func (h *Handler) ConvertProof(c *gin.Context) {
	var req ConvertProofIn
	if err := c.ShouldBindJSON(&req); err != nil || req.ProofB64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	proofData, err := base64.StdEncoding.DecodeString(req.ProofB64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "proof_b64 is not valid base64: " + err.Error()})
		return
	}

	out, err := h.Service.ConvertProof(proofData, req.NumInputs)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if !errors.Is(err, ultraplonk.ErrProofTooShort) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// ConvertVerificationKey godoc
// @Summary      Convert an UltraPlonk verification key
// @Description  Parses the serialized key and returns its Solidity byte layout hex-encoded
// @Tags         Convert
// @Accept       json
// @Produce      json
// @Param        body  body      object{vk_b64=string}  true  "Verification key bytes (base64)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/convert/verification-key [post]
func (h *Handler) ConvertVerificationKey(c *gin.Context) {
	vkData, ok := h.decodeVkBody(c)
	if !ok {
		return
	}

	out, err := h.Service.ConvertVerificationKey(vkData)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// ExportGroth16Verifier godoc
// @Summary      Export a Groth16 Solidity verifier
// @Description  Reads a gnark-serialized Groth16 BN254 verifying key and returns the verifier contract source
// @Tags         Convert
// @Accept       json
// @Produce      json
// @Param        body  body      object{vk_b64=string}  true  "Verifying key bytes (base64)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /v1/convert/groth16-verifier [post]
func (h *Handler) ExportGroth16Verifier(c *gin.Context) {
	vkData, ok := h.decodeVkBody(c)
	if !ok {
		return
	}

	out, err := h.Service.ExportGroth16Verifier(vkData)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// Health godoc
// @Summary      Liveness probe
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /v1/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) decodeVkBody(c *gin.Context) ([]byte, bool) {
	var req ConvertVkIn
	if err := c.ShouldBindJSON(&req); err != nil || req.VkB64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return nil, false
	}

	vkData, err := base64.StdEncoding.DecodeString(req.VkB64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vk_b64 is not valid base64: " + err.Error()})
		return nil, false
	}

	return vkData, true
}
