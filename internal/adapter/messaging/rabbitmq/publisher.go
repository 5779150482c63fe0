package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"bank-ledger/config"
	"bank-ledger/internal/core/domain"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// RoutingKeyPrefix prefixes the lower-cased operation type,
// e.g. "ledger.operation.deposit".
const RoutingKeyPrefix = "ledger.operation."

// OperationEvent is the JSON body of a published operation.
type OperationEvent struct {
	OperationID   string `json:"operation_id"`
	AccountID     string `json:"account_id"`
	OperationType string `json:"operation_type"`
	Amount        string `json:"amount"`
	Balance       string `json:"balance"`
	Date          string `json:"date"`
}

func NewOperationEvent(op *domain.Operation) OperationEvent {
	return OperationEvent{
		OperationID:   op.ID.String(),
		AccountID:     op.AccountID.String(),
		OperationType: string(op.OperationType),
		Amount:        domain.FormatDecimal(op.Amount),
		Balance:       domain.FormatDecimal(op.Balance),
		Date:          op.Date.Format(time.RFC3339),
	}
}

// RoutingKey returns the routing key for an operation type.
func RoutingKey(t domain.OperationType) string {
	return RoutingKeyPrefix + strings.ToLower(string(t))
}

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher implements ports.OperationPublisher on a RabbitMQ topic exchange.
type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
}

// NewPublisher dials RabbitMQ and declares the durable topic exchange.
func NewPublisher(cfg config.RabbitMQConfig, log zerolog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dialing rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("opening rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declaring exchange %q: %w", cfg.Exchange, err)
	}

	log.Info().
		Str("exchange", cfg.Exchange).
		Msg("RabbitMQ publisher ready")

	return &Publisher{conn: conn, ch: ch, exchange: cfg.Exchange}, nil
}

func (p *Publisher) PublishOperation(ctx context.Context, op *domain.Operation) error {
	body, err := json.Marshal(NewOperationEvent(op))
	if err != nil {
		return fmt.Errorf("marshal operation event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, RoutingKey(op.OperationType), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    op.ID.String(),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish operation %s: %w", op.ID, err)
	}
	return nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
