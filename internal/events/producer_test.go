package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/rookgm/chefbazaar/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_PublishOrderPaid(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	event := models.OrderPaidEvent{
		TrackingID:    "PKG-20261019-0A1B2C3D",
		TransactionID: "pi_abc",
		FoodID:        "meal-1",
		BuyerEmail:    "buyer@example.com",
		Amount:        12.5,
		Currency:      "usd",
		PaidAt:        time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	}

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "order.paid" {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != event.TrackingID {
			return errors.New("unexpected key " + string(key))
		}
		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var got models.OrderPaidEvent
		if err := json.Unmarshal(value, &got); err != nil {
			return err
		}
		if got.TransactionID != event.TransactionID || got.Amount != event.Amount || !got.PaidAt.Equal(event.PaidAt) {
			return errors.New("unexpected payload")
		}
		return nil
	})

	p := NewPublisher(producer, "order.paid")
	require.NoError(t, p.PublishOrderPaid(context.Background(), event))
	require.NoError(t, p.Close())
}

func TestPublisher_PublishOrderPaid_Error(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewPublisher(producer, "order.paid")
	err := p.PublishOrderPaid(context.Background(), models.OrderPaidEvent{TrackingID: "PKG-20261019-0A1B2C3D"})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}
