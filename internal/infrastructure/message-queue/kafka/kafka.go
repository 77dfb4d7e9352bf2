package kafka

import (
	"time"

	"github.com/amusetravel-BackEnd/amuseAdmin/config"
	"github.com/segmentio/kafka-go"
)

// CreateKafkaWriter returns nil when no broker is configured; publishing is then skipped.
func CreateKafkaWriter(config *config.Config) *kafka.Writer {
	if config.KafkaConfig.BrokerAddress == "" {
		return nil
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(config.KafkaConfig.BrokerAddress),
		Topic:                  config.KafkaConfig.BrokerTopic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}
