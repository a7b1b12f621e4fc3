// Command marketwatch-kpi prints synthesized KPI payloads for a filter tuple
package main

import (
	"os"

	"marketwatch/internal/platform/logger"
)

func main() {
	opt := logger.FromEnv()
	opt.Writer = os.Stderr
	if os.Getenv("LOG_LEVEL") == "" {
		opt.Level = "warn"
	}
	logger.Init(opt)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
