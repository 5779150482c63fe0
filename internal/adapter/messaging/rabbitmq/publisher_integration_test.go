//go:build integration

package rabbitmq_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"bank-ledger/config"
	"bank-ledger/internal/adapter/messaging/rabbitmq"
	"bank-ledger/internal/core/domain"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRabbitMQ(t *testing.T, ctx context.Context) string {
	t.Helper()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "rabbitmq:3-management",
			ExposedPorts: []string{"5672/tcp"},
			Env: map[string]string{
				"RABBITMQ_DEFAULT_USER": "guest",
				"RABBITMQ_DEFAULT_PASS": "guest",
			},
			WaitingFor: wait.ForLog("Server startup complete"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate rabbitmq container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5672")
	require.NoError(t, err)

	return fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())
}

func TestPublisher_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := config.RabbitMQConfig{
		Enabled:  true,
		URL:      startRabbitMQ(t, ctx),
		Exchange: "ledger.operations",
	}

	pub, err := rabbitmq.NewPublisher(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer pub.Close()

	conn, err := amqp.Dial(cfg.URL)
	require.NoError(t, err)
	defer conn.Close()
	ch, err := conn.Channel()
	require.NoError(t, err)
	defer ch.Close()

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(q.Name, rabbitmq.RoutingKeyPrefix+"*", cfg.Exchange, false, nil))
	msgs, err := ch.Consume(q.Name, "", true, false, false, false, nil)
	require.NoError(t, err)

	op := &domain.Operation{
		ID:            uuid.New(),
		AccountID:     uuid.New(),
		Amount:        decimal.RequireFromString("250.00"),
		Balance:       decimal.RequireFromString("250.00"),
		Date:          time.Date(2023, time.July, 4, 12, 34, 0, 0, time.UTC),
		OperationType: domain.OperationTypeDeposit,
	}
	require.NoError(t, pub.PublishOperation(ctx, op))

	select {
	case msg := <-msgs:
		assert.Equal(t, "ledger.operation.deposit", msg.RoutingKey)
		assert.Equal(t, op.ID.String(), msg.MessageId)

		var event rabbitmq.OperationEvent
		require.NoError(t, json.Unmarshal(msg.Body, &event))
		assert.Equal(t, op.AccountID.String(), event.AccountID)
		assert.Equal(t, "250.00", event.Amount)
		assert.Equal(t, "DEPOSIT", event.OperationType)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for operation event")
	}
}
