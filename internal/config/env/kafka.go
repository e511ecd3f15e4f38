package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Brokers            []string `env:"KAFKA_BROKERS"`
	InvoiceEventsTopic string   `env:"KAFKA_INVOICE_EVENTS_TOPIC" envDefault:"autoparts.invoice-events"`
	PaymentsTopic      string   `env:"KAFKA_PAYMENTS_TOPIC" envDefault:"autoparts.payments"`
	ConsumerGroupID    string   `env:"KAFKA_CONSUMER_GROUP_ID" envDefault:"autoparts-billing"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

// Enabled reports whether any broker is configured. Without one the
// service runs with a no-op event sender and no payment consumer.
func (cfg *kafka) Enabled() bool              { return len(cfg.raw.Brokers) > 0 }
func (cfg *kafka) Brokers() []string          { return cfg.raw.Brokers }
func (cfg *kafka) InvoiceEventsTopic() string { return cfg.raw.InvoiceEventsTopic }
func (cfg *kafka) PaymentsTopic() string      { return cfg.raw.PaymentsTopic }
func (cfg *kafka) ConsumerGroupID() string    { return cfg.raw.ConsumerGroupID }

func (cfg *kafka) PaymentsConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}

func (cfg *kafka) InvoiceEventsProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}
