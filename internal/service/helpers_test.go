package service

import "github.com/velikanov/groupsync/internal/logger"

func testLogger() *logger.Logger { return logger.Nop() }
