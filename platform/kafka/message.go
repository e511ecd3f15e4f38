package kafka

import "time"

// Message is a transport-neutral view of a consumed Kafka record.
type Message struct {
	Headers        map[string][]byte
	Timestamp      time.Time
	BlockTimestamp time.Time

	Key       []byte
	Value     []byte
	Topic     string
	Partition int32
	Offset    int64
}

// StringHeaders returns the headers as strings, the form trace propagators expect.
func (m Message) StringHeaders() map[string]string {
	out := make(map[string]string, len(m.Headers))
	for k, v := range m.Headers {
		out[k] = string(v)
	}
	return out
}
