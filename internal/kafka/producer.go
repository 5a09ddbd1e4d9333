package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"studio-backoffice/internal/models"
)

// Producer streams record-creation events so downstream consumers
// (notification and assignment tooling) hear about new work.
type Producer struct {
	shootWriter *kafka.Writer
	editWriter  *kafka.Writer
}

func NewProducer(brokers []string, shootTopic, editTopic string) *Producer {
	return &Producer{
		shootWriter: kafka.NewWriter(kafka.WriterConfig{Brokers: brokers, Topic: shootTopic}),
		editWriter:  kafka.NewWriter(kafka.WriterConfig{Brokers: brokers, Topic: editTopic}),
	}
}

func (p *Producer) PublishShootCreated(shoot models.Shoot) error {
	msgBytes, err := json.Marshal(shoot)
	if err != nil {
		return err
	}
	return p.shootWriter.WriteMessages(context.Background(),
		kafka.Message{
			Key:   []byte(shoot.Code),
			Value: msgBytes,
		},
	)
}

func (p *Producer) PublishEditProjectCreated(project models.EditProject) error {
	msgBytes, err := json.Marshal(project)
	if err != nil {
		return err
	}
	return p.editWriter.WriteMessages(context.Background(),
		kafka.Message{
			Key:   []byte(project.Code),
			Value: msgBytes,
		},
	)
}

func (p *Producer) Close() error {
	if err := p.shootWriter.Close(); err != nil {
		return err
	}
	return p.editWriter.Close()
}
