package kafka_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nandemo-ya/mskgo/internal/logging"
)

func TestKafka(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "MSK Client Suite")
}

var _ = BeforeSuite(func() {
	prev := logging.GetGlobalLogger()
	logging.SetGlobalLogger(logging.Discard())
	DeferCleanup(func() { logging.SetGlobalLogger(prev) })
})
