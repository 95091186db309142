package workers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/olivmath/ultraplonk-verifier/internal/convert"
	"github.com/olivmath/ultraplonk-verifier/pkg/dto"
	"github.com/olivmath/ultraplonk-verifier/pkg/logger"
	"github.com/olivmath/ultraplonk-verifier/pkg/rabbitmq"
	"github.com/olivmath/ultraplonk-verifier/pkg/reasoncodes"
)

type ConversionWorker struct {
	Consumer rabbitmq.IRabbitmqConsumer
	Service  convert.ConvertService
}

func NewConversionWorker() *ConversionWorker {
	return &ConversionWorker{
		Consumer: rabbitmq.GetConsumer(jobQueueConsumerAlias),
		Service:  convert.NewService(),
	}
}

func (cw *ConversionWorker) GetServiceName() string {
	return conversionWorkerServiceName
}

func (cw *ConversionWorker) StartService() {
	workerLogger := logger.Default()
	failurePublisher := rabbitmq.GetPublisher(failureQueuePublisherAlias)
	resultPublisher := rabbitmq.GetPublisher(resultQueuePublisherAlias)

	cw.Consumer.StartConsuming(func(d amqp.Delivery) {
		var job ConversionJobDto
		responseFactory := dto.NewConversionFailureFactory("", d.Body)

		if err := json.Unmarshal(d.Body, &job); err != nil {
			result := responseFactory.CreateErrorDto(err, reasoncodes.ErrUnmarshal)

			_ = failurePublisher.Publish(result)
			return
		}
		if job.EventId == "" {
			job.EventId = uuid.NewString()
		}
		responseFactory = dto.NewConversionFailureFactory(job.EventId, d.Body)

		payload, err := base64.StdEncoding.DecodeString(job.PayloadB64)
		if err != nil {
			workerLogger.Errorf(err, "Failed to decode payload for job %s", job.EventId)
			response := responseFactory.CreateErrorDto(err, reasoncodes.ErrPayloadDecode)

			_ = failurePublisher.Publish(response)
			return
		}

		result, err := cw.runConversion(job, payload)
		if err != nil {
			workerLogger.Errorf(err, "Conversion failed for job %s (%s)", job.EventId, job.Kind)
			response := responseFactory.CreateErrorDto(err, reasonFor(job.Kind))

			_ = failurePublisher.Publish(response)
			return
		}

		_ = resultPublisher.Publish(result)
		workerLogger.Infof("Processed conversion job %s (%s): %d hex chars", job.EventId, job.Kind, len(result.Hex))
	})
}

func (cw *ConversionWorker) runConversion(job ConversionJobDto, payload []byte) (dto.ConversionResultDto, error) {
	switch job.Kind {
	case JobKindProof:
		out, err := cw.Service.ConvertProof(payload, job.NumInputs)
		if err != nil {
			return dto.ConversionResultDto{}, err
		}
		return dto.ConversionResultDto{
			EventId:      job.EventId,
			Kind:         job.Kind,
			Hex:          out.ProofHex,
			PublicInputs: out.PublicInputs,
		}, nil
	case JobKindVerificationKey:
		out, err := cw.Service.ConvertVerificationKey(payload)
		if err != nil {
			return dto.ConversionResultDto{}, err
		}
		return dto.ConversionResultDto{
			EventId: job.EventId,
			Kind:    job.Kind,
			Hex:     out.VkHex,
		}, nil
	default:
		return dto.ConversionResultDto{}, fmt.Errorf("unknown conversion job kind %q", job.Kind)
	}
}

func reasonFor(kind string) reasoncodes.ReasonCode {
	switch kind {
	case JobKindProof:
		return reasoncodes.ErrProofConversion
	case JobKindVerificationKey:
		return reasoncodes.ErrVkConversion
	default:
		return reasoncodes.ErrUnknownJobKind
	}
}
