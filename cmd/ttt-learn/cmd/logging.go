package cmd

import (
	"go.uber.org/zap"
)

var logger = zap.NewNop()

func setupLogging(verbose bool) error {
	if !verbose {
		logger = zap.NewNop()
		return nil
	}

	var err error
	if logger, err = zap.NewDevelopment(zap.AddCaller()); err != nil {
		return err
	}
	return nil
}
