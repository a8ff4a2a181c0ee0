package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/entity"
)

type Producer struct {
	l                 *slog.Logger
	w                 *kafka.Writer
	cardsCreatedTopic string
}

func NewProducer(brokers []string, topic string) *Producer {
	l := slog.Default().WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireOne,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                 l,
		w:                 w,
		cardsCreatedTopic: topic,
	}
}

// RunFinishedEvent carries the cards created by one reconciliation run.
type RunFinishedEvent struct {
	RunID uuid.UUID            `json:"run_id"`
	Cards []entity.CardCreated `json:"cards"`
}

func (p *Producer) SendRunFinished(ctx context.Context, runID uuid.UUID, cards []entity.CardCreated) error {
	b, err := json.Marshal(RunFinishedEvent{
		RunID: runID,
		Cards: cards,
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(runID.String()),
		Value: b,
		Topic: p.cardsCreatedTopic,
	})
	if err != nil {
		return fmt.Errorf("write kafka message: %w", err)
	}

	return nil
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
