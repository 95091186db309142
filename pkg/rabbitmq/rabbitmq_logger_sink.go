package rabbitmq

import (
	"fmt"

	"github.com/rs/zerolog"

	logger_message "github.com/olivmath/ultraplonk-verifier/pkg/utilities/logger"
	"github.com/olivmath/ultraplonk-verifier/pkg/utilities/timeutil"
)

func CreateRabbitmqLoggerSink(publisher IRabbitmqPublisher) func(string, zerolog.Level, timeutil.TimeUTC) {
	return func(msg string, level zerolog.Level, timestamp timeutil.TimeUTC) {
		loggerMessage := logger_message.LoggerMessage{
			Level:     level.String(),
			Message:   msg,
			Timestamp: timestamp,
		}

		err := publisher.Publish(loggerMessage)
		if err != nil {
			// Avoid infinite recursion by not using the logger here
			fmt.Printf("Failed to publish log message to RabbitMQ: %v\n", err)
		}
	}
}
