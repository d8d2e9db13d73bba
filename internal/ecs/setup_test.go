package ecs

import (
	"os"
	"testing"

	"cognitive-rogue/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
