package utilities

import "github.com/olivmath/ultraplonk-verifier/pkg/logger"

func FailOnError(err error, msg string) {
	if err != nil {
		logger.Default().Panicf(err, "%s", msg)
	}
}
