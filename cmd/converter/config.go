package main

import (
	"github.com/olivmath/ultraplonk-verifier/pkg/logger"
	"github.com/olivmath/ultraplonk-verifier/pkg/rabbitmq"
)

type ConverterConfigJson struct {
	LoggerConf   logger.LoggerConfigJson    `json:"logger"`
	RabbitmqConf rabbitmq.RabbimqConfigJson `json:"rabbitmq"`
	RestConf     ConverterRestConfigJson    `json:"rest"`
}

func (ccj ConverterConfigJson) ConvertToDomain() ConverterConfig {
	return ConverterConfig{
		LoggerConf:   ccj.LoggerConf.ConvertToDomain(),
		RabbitmqConf: ccj.RabbitmqConf.ConvertToDomain(),
		RestConf:     ccj.RestConf.ConvertToDomain(),
	}
}

type ConverterConfig struct {
	LoggerConf   logger.LoggerConfig
	RabbitmqConf rabbitmq.RabbitmqConfig
	RestConf     ConverterRestConfig
}

func (cc ConverterConfig) GetLoggerConfig() logger.LoggerConfig {
	return cc.LoggerConf
}

func (cc ConverterConfig) GetRabbitmqConfig() rabbitmq.RabbitmqConfig {
	return cc.RabbitmqConf
}

func (cc ConverterConfig) GetRestApiPort() uint16 {
	return cc.RestConf.Port
}

type ConverterRestConfigJson struct {
	Port uint16 `json:"port"`
}

type ConverterRestConfig struct {
	Port uint16
}

func (crcj ConverterRestConfigJson) ConvertToDomain() ConverterRestConfig {
	return ConverterRestConfig{
		Port: crcj.Port,
	}
}
