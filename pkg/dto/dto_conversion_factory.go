package dto

import (
	"github.com/olivmath/ultraplonk-verifier/pkg/reasoncodes"
	"github.com/olivmath/ultraplonk-verifier/pkg/utilities"
)

type ConversionDtoFactory interface {
	CreateErrorDto(error, reasoncodes.ReasonCode) utilities.Serializable
	CreateInfoDto(reasoncodes.ReasonCode) utilities.Serializable
}

type conversionFailureDtoFactory struct {
	EventId     string
	RequestBody []byte
}

func NewConversionFailureFactory(eventId string, requestBody []byte) ConversionDtoFactory {
	return conversionFailureDtoFactory{
		EventId:     eventId,
		RequestBody: requestBody,
	}
}

func (cfdf conversionFailureDtoFactory) CreateErrorDto(
	err error,
	reasonCode reasoncodes.ReasonCode) utilities.Serializable {
	return ConversionFailureDto{
		EventId:     cfdf.EventId,
		RequestBody: cfdf.RequestBody,
		Error:       err.Error(),
		ReasonCode:  reasonCode,
	}
}

func (cfdf conversionFailureDtoFactory) CreateInfoDto(reasonCode reasoncodes.ReasonCode) utilities.Serializable {
	return ConversionFailureDto{
		EventId:     cfdf.EventId,
		RequestBody: cfdf.RequestBody,
		ReasonCode:  reasonCode,
	}
}
