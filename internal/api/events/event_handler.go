package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/RafaelZelak/AberturaDeBaseBitrix/internal/entity"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/pkg/broker"
	"github.com/RafaelZelak/AberturaDeBaseBitrix/pkg/logger"
)

type Notifier interface {
	Notify(ctx context.Context, cards []entity.CardCreated) error
}

type EventHandler struct {
	n Notifier
}

func NewEventHandler(n Notifier) *EventHandler {
	return &EventHandler{n: n}
}

// RunFinished mails the summaries of the cards created by one reconciliation run.
func (h *EventHandler) RunFinished(ctx context.Context, msg kafka.Message) error {
	var event broker.RunFinishedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	ctx = logger.WithRunID(ctx, event.RunID)

	err = h.n.Notify(ctx, event.Cards)
	if err != nil {
		return fmt.Errorf("notify run %s: %w", event.RunID, err)
	}

	return nil
}
