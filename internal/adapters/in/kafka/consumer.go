// Package kafka implements the inbound saga response consumer. It listens
// for payment and restaurant approval responses and applies the matching
// order lifecycle command.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// Payment outcome values reported by the payment service.
const (
	PaymentStatusCompleted = "completed"
	PaymentStatusCancelled = "cancelled"
	PaymentStatusFailed    = "failed"
)

// Approval outcome values reported by the restaurant service.
const (
	ApprovalStatusApproved = "approved"
	ApprovalStatusRejected = "rejected"
)

// PaymentResponse is the message the payment service publishes after
// processing a charge or a refund.
type PaymentResponse struct {
	OrderID         string   `json:"order_id"`
	PaymentStatus   string   `json:"payment_status"`
	FailureMessages []string `json:"failure_messages"`
}

// ApprovalResponse is the message the restaurant service publishes after
// reviewing a paid order.
type ApprovalResponse struct {
	OrderID         string   `json:"order_id"`
	ApprovalStatus  string   `json:"order_approval_status"`
	FailureMessages []string `json:"failure_messages"`
}

// Consumer polls the saga response topics and dispatches each record to the
// matching command handler. Processing is idempotent at the domain level:
// a redelivered response fails the state transition check and is dropped.
type Consumer struct {
	client *kgo.Client
	log    *slog.Logger

	paymentResponseTopic  string
	approvalResponseTopic string

	payHandler                *commands.PayOrderCommandHandler
	approveHandler            *commands.ApproveOrderCommandHandler
	cancelOrderPaymentHandler *commands.CancelOrderPaymentCommandHandler
	cancelOrderHandler        *commands.CancelOrderCommandHandler
}

// ConsumerConfig carries the connection and topic settings for the saga
// response consumer.
type ConsumerConfig struct {
	Brokers               []string
	GroupID               string
	PaymentResponseTopic  string
	ApprovalResponseTopic string
}

// NewConsumer creates a consumer group member subscribed to both saga
// response topics.
func NewConsumer(
	cfg ConsumerConfig,
	log *slog.Logger,
	payHandler *commands.PayOrderCommandHandler,
	approveHandler *commands.ApproveOrderCommandHandler,
	cancelOrderPaymentHandler *commands.CancelOrderPaymentCommandHandler,
	cancelOrderHandler *commands.CancelOrderCommandHandler,
) (*Consumer, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ConsumerGroup(cfg.GroupID),
		kgo.ConsumeTopics(cfg.PaymentResponseTopic, cfg.ApprovalResponseTopic),
		kgo.BlockRebalanceOnPoll(),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	return &Consumer{
		client:                    client,
		log:                       log.With("component", "saga_consumer"),
		paymentResponseTopic:      cfg.PaymentResponseTopic,
		approvalResponseTopic:     cfg.ApprovalResponseTopic,
		payHandler:                payHandler,
		approveHandler:            approveHandler,
		cancelOrderPaymentHandler: cancelOrderPaymentHandler,
		cancelOrderHandler:        cancelOrderHandler,
	}, nil
}

// Run polls the response topics until the context is canceled. A record
// that cannot be processed is logged and skipped; the saga tolerates
// redelivery, so failing fast on malformed input would only stall the
// partition.
func (c *Consumer) Run(ctx context.Context) {
	c.log.Info("saga response consumer started")
	defer c.client.Close()

	for {
		fetches := c.client.PollFetches(ctx)
		if fetches.IsClientClosed() || ctx.Err() != nil {
			c.log.Info("saga response consumer stopped")
			return
		}

		fetches.EachError(func(topic string, partition int32, err error) {
			c.log.Error("fetch failed", "topic", topic, "partition", partition, "error", err)
		})

		fetches.EachRecord(func(record *kgo.Record) {
			if err := c.handleRecord(ctx, record); err != nil {
				c.log.Error("record processing failed",
					"topic", record.Topic,
					"key", string(record.Key),
					"error", err,
				)
			}
		})
	}
}

func (c *Consumer) handleRecord(ctx context.Context, record *kgo.Record) error {
	switch record.Topic {
	case c.paymentResponseTopic:
		return c.handlePaymentResponse(ctx, record.Value)
	case c.approvalResponseTopic:
		return c.handleApprovalResponse(ctx, record.Value)
	default:
		return fmt.Errorf("unexpected topic %q", record.Topic)
	}
}

func (c *Consumer) handlePaymentResponse(ctx context.Context, value []byte) error {
	var response PaymentResponse
	if err := json.Unmarshal(value, &response); err != nil {
		return fmt.Errorf("unmarshal payment response: %w", err)
	}

	orderID, err := kernel.OrderIDFromString(response.OrderID)
	if err != nil {
		return err
	}

	switch response.PaymentStatus {
	case PaymentStatusCompleted:
		cmd, cmdErr := commands.NewPayOrderCommand(orderID)
		if cmdErr != nil {
			return cmdErr
		}
		err = c.payHandler.Handle(ctx, cmd)

	case PaymentStatusCancelled, PaymentStatusFailed:
		cmd, cmdErr := commands.NewCancelOrderCommand(orderID, response.FailureMessages)
		if cmdErr != nil {
			return cmdErr
		}
		err = c.cancelOrderHandler.Handle(ctx, cmd)

	default:
		return fmt.Errorf("unexpected payment status %q", response.PaymentStatus)
	}

	return c.ignoreStaleTransition(err, "payment", response.OrderID)
}

func (c *Consumer) handleApprovalResponse(ctx context.Context, value []byte) error {
	var response ApprovalResponse
	if err := json.Unmarshal(value, &response); err != nil {
		return fmt.Errorf("unmarshal approval response: %w", err)
	}

	orderID, err := kernel.OrderIDFromString(response.OrderID)
	if err != nil {
		return err
	}

	switch response.ApprovalStatus {
	case ApprovalStatusApproved:
		cmd, cmdErr := commands.NewApproveOrderCommand(orderID)
		if cmdErr != nil {
			return cmdErr
		}
		err = c.approveHandler.Handle(ctx, cmd)

	case ApprovalStatusRejected:
		cmd, cmdErr := commands.NewCancelOrderPaymentCommand(orderID, response.FailureMessages)
		if cmdErr != nil {
			return cmdErr
		}
		err = c.cancelOrderPaymentHandler.Handle(ctx, cmd)

	default:
		return fmt.Errorf("unexpected approval status %q", response.ApprovalStatus)
	}

	return c.ignoreStaleTransition(err, "approval", response.OrderID)
}

// ignoreStaleTransition drops state transition errors caused by redelivered
// responses. The order already left the expected status, so the message
// carries no new information.
func (c *Consumer) ignoreStaleTransition(err error, leg, orderID string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, order.ErrInvalidStateTransition) {
		c.log.Warn("dropping stale saga response", "leg", leg, "order_id", orderID, "error", err)
		return nil
	}

	return err
}
