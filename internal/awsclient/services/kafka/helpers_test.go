package kafka_test

import (
	"time"

	"github.com/nandemo-ya/mskgo/internal/awsclient/services/kafka"
)

// fastPolling keeps waiter tests and examples quick against mocks and fakemsk.
func fastPolling(o *kafka.WaiterOptions) {
	o.PollInterval = 5 * time.Millisecond
	o.Timeout = 5 * time.Second
}
