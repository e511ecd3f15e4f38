package config

import (
	"time"

	"github.com/IBM/sarama"
	"github.com/shopspring/decimal"
)

type Client interface {
	Host() string
	Port() int
	Address() string
}

type Server interface {
	Client
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	MigrationDirectory() string
	DSN() string
}

type Billing interface {
	TaxRate() decimal.Decimal
	InvoicePrefix() string
	NumberDateLayout() string
	NumberSeqWidth() int
	Location() *time.Location
	SeedOnStart() bool
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	InvoiceEventsTopic() string
	PaymentsTopic() string
	ConsumerGroupID() string
	PaymentsConsumerConfig() *sarama.Config
	InvoiceEventsProducerConfig() *sarama.Config
}

type Redis interface {
	Enabled() bool
	Address() string
	Password() string
	DB() int
	KeyPrefix() string
	TTL() time.Duration
}

type Tracing interface {
	ServiceName() string
	ServiceVersion() string
	Endpoint() string
	URLPath() string
	Insecure() bool
	SampleRatio() float64
}
