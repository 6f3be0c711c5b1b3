package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/warehouse/model"
	"github.com/muhammadheryan/warehouse/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var log = logger.Component("rabbitmq")

// Consumer turns queued reassignment requests into synchronous calls against
// the internal HTTP API. It runs as its own process and holds no core state.
type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	apiURL  string
	apiKey  string
	client  *http.Client
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	if err := declareReassignQueue(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		apiURL:  apiURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func declareReassignQueue(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		CommandsExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		ReassignQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		ReassignQueue,
		ReassignRouteKey,
		CommandsExchange,
		false,
		nil,
	)
}

func (c *Consumer) Start(ctx context.Context) error {
	// one request at a time; each one is a full transaction on the server side
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		ReassignQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				if msg.DeliveryTag == 0 { // channel closed
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var req model.ReassignRequestMessage
	if err := json.Unmarshal(msg.Body, &req); err != nil || req.ProductID == 0 {
		log.Warn("[ReassignConsumer] dropping malformed message", zap.ByteString("body", msg.Body))
		_ = msg.Ack(false)
		return
	}

	status, err := c.callReassignAPI(ctx, req)
	switch {
	case err != nil:
		// transport or 5xx failure: retry later
		log.Error("[ReassignConsumer] reassign failed", zap.Uint64("product_id", req.ProductID), zap.String("error", err.Error()))
		_ = msg.Nack(false, true)
	case status >= 400:
		// the server refused (not found, no capacity); retrying the same message will not help
		log.Warn("[ReassignConsumer] reassign rejected", zap.Uint64("product_id", req.ProductID), zap.Int("status", status))
		_ = msg.Ack(false)
	default:
		log.Info("[ReassignConsumer] reassign done", zap.Uint64("product_id", req.ProductID))
		_ = msg.Ack(false)
	}
}

func (c *Consumer) callReassignAPI(ctx context.Context, req model.ReassignRequestMessage) (int, error) {
	url := fmt.Sprintf("%s/internal/v1/products/%d/reassign", c.apiURL, req.ProductID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return 0, err
	}

	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	httpReq.Header.Set("Content-Type", "application/json")
	requestedBy := req.RequestedBy
	if requestedBy == "" {
		requestedBy = "reassign-consumer"
	}
	httpReq.Header.Set("X-Internal-Service", requestedBy)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 500 {
		return resp.StatusCode, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return resp.StatusCode, nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
