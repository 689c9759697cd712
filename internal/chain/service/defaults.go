package service

import "time"

const (
	archiveBatcherCapacity      = 1000
	archiveBatcherFlushInterval = 5 * time.Second
	archiveBatcherRPS           = 20

	transactionFlushThreshold = 10_000

	followerSleepDuration = 30 * time.Second
)
