package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/olivmath/ultraplonk-verifier/internal/convert"
	"github.com/olivmath/ultraplonk-verifier/internal/workers"
	appbuilder "github.com/olivmath/ultraplonk-verifier/pkg/appbuilder"
	"github.com/olivmath/ultraplonk-verifier/pkg/logger"
	"github.com/olivmath/ultraplonk-verifier/pkg/rabbitmq"
	"github.com/olivmath/ultraplonk-verifier/pkg/rest"
)

// @title           UltraPlonk Converter API
// @version         1.0
// @description     API to convert UltraPlonk proofs and verification keys for Solidity verifiers
// @host localhost:9100
// @BasePath /v1
func main() {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.json"
	}

	convertHandler := convert.Build()

	appbuilder.New[ConverterConfigJson, ConverterConfig]().
		InitLogger(logger.GlobalLoggerConfig{
			Args: []struct {
				Key   string
				Value string
			}{
				{"application", "ultraplonk-converter"},
				{"version", "1.0.0"},
			},
		}).
		LoadConfig(configPath).

		// ----- RABBITMQ -----
		InitRabbitmqConnection().
		InitRabbitmqRegistries().
		WithOption(func(a *appbuilder.AppBuilder[ConverterConfigJson, ConverterConfig]) {
			// ----- RABBITMQ LOGGING SINK -----
			logPublisher := rabbitmq.GetPublisher("LogPublisher")
			if logPublisher != nil {
				loggerInstance := logger.Default()
				logSink := rabbitmq.CreateRabbitmqLoggerSink(logPublisher)
				logger.AddSinkToLoggerInstance(loggerInstance, logSink)
			}
		}).

		// ----- WORKERS -----
		AddWorkerServices(
			workers.NewConversionWorker(),
		).

		// ----- MIDDLEWARE -----
		AddGinMiddleware(
			rest.NewMiddleware("*", rest.CORSMiddleware()),
		).

		// ----- ROUTES -----
		AddGinRoutes(
			rest.NewRoute(rest.POST, "v1", "convert/proof", convertHandler.ConvertProof),
			rest.NewRoute(rest.POST, "v1", "convert/verification-key", convertHandler.ConvertVerificationKey),
			rest.NewRoute(rest.POST, "v1", "convert/groth16-verifier", convertHandler.ExportGroth16Verifier),
			rest.NewRoute(rest.GET, "v1", "health", convertHandler.Health),
		).
		AddSwagger().
		InitGinRouter().
		Build().
		Start()
}
