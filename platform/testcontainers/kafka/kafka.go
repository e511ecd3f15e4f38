package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	tc "github.com/you-humble/autoparts/platform/testcontainers"
)

const clusterID = "Mk3OEYBSD34fcwNTJENDM2Qk"

type Container struct {
	container *tckafka.KafkaContainer
	brokers   []string
}

func NewContainer(ctx context.Context) (*Container, error) {
	c, err := tckafka.Run(ctx,
		tc.KafkaImage,
		tckafka.WithClusterID(clusterID),
	)
	if err != nil {
		return nil, errors.Errorf("failed to start kafka container: %v", err)
	}

	brokers, err := c.Brokers(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, errors.Errorf("failed to get kafka brokers: %v", err)
	}

	return &Container{container: c, brokers: brokers}, nil
}

func (c *Container) Brokers() []string { return c.brokers }

// CreateTopics creates single-partition topics, existing ones are kept.
func (c *Container) CreateTopics(topics ...string) error {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V4_0_0_0
	cfg.Admin.Timeout = 10 * time.Second

	admin, err := sarama.NewClusterAdmin(c.brokers, cfg)
	if err != nil {
		return errors.Wrap(err, "cluster admin")
	}
	defer admin.Close()

	for _, t := range topics {
		err := admin.CreateTopic(t, &sarama.TopicDetail{
			NumPartitions:     1,
			ReplicationFactor: 1,
		}, false)
		if err != nil && !errors.Is(err, sarama.ErrTopicAlreadyExists) {
			return errors.Wrapf(err, "create topic %s", t)
		}
	}

	return nil
}

func (c *Container) Terminate(ctx context.Context) error {
	return c.container.Terminate(ctx)
}
