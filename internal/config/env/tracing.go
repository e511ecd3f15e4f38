package envconfig

import "github.com/caarlos0/env/v11"

type tracingEnv struct {
	ServiceName    string  `env:"OTEL_SERVICE_NAME" envDefault:"autoparts"`
	ServiceVersion string  `env:"OTEL_SERVICE_VERSION" envDefault:"dev"`
	Endpoint       string  `env:"OTEL_EXPORTER_ENDPOINT"`
	URLPath        string  `env:"OTEL_EXPORTER_URL_PATH"`
	Insecure       bool    `env:"OTEL_EXPORTER_INSECURE" envDefault:"true"`
	SampleRatio    float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"1"`
}

type tracing struct {
	raw tracingEnv
}

func NewTracingConfig() (*tracing, error) {
	var raw tracingEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &tracing{raw: raw}, nil
}

func (cfg *tracing) ServiceName() string    { return cfg.raw.ServiceName }
func (cfg *tracing) ServiceVersion() string { return cfg.raw.ServiceVersion }
func (cfg *tracing) Endpoint() string       { return cfg.raw.Endpoint }
func (cfg *tracing) URLPath() string        { return cfg.raw.URLPath }
func (cfg *tracing) Insecure() bool         { return cfg.raw.Insecure }
func (cfg *tracing) SampleRatio() float64   { return cfg.raw.SampleRatio }
