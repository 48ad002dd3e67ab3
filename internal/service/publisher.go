package service

import (
    "context"
    "time"

    jsoniter "github.com/json-iterator/go"
    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/rs/zerolog/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EventPublisher delivers a domain event to the named queue.  Callers treat
// failures as non-fatal: the stored entity is not rolled back.
type EventPublisher interface {
    Publish(ctx context.Context, queue string, event any) error
}

// dialTimeout bounds how long a create request can wait on an unreachable
// broker.
const dialTimeout = 2 * time.Second

// AMQPPublisher publishes events to RabbitMQ.  It dials per message, which
// keeps it free of connection state at the cost of a round trip; creates
// are rare enough for that to be fine.
type AMQPPublisher struct {
    url string
}

// NewAMQPPublisher returns a publisher for the broker at url.
func NewAMQPPublisher(url string) *AMQPPublisher {
    return &AMQPPublisher{url: url}
}

// Publish declares queue (durable, idempotent) and sends event as a
// persistent JSON message through the default exchange.
func (p *AMQPPublisher) Publish(ctx context.Context, queue string, event any) error {
    logger := log.Ctx(ctx).With().Str("queue", queue).Logger()

    conn, err := amqp.DialConfig(p.url, amqp.Config{
        Heartbeat: 10 * time.Second,
        Locale:    "en_US",
        Dial:      amqp.DefaultDial(dialTimeout),
    })
    if err != nil {
        logger.Warn().Err(err).Msg("rabbitmq: dial failed")
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        logger.Warn().Err(err).Msg("rabbitmq: channel open failed")
        return err
    }
    defer func() { _ = ch.Close() }()

    if _, err := ch.QueueDeclare(
        queue, // name
        true,  // durable
        false, // autoDelete
        false, // exclusive
        false, // noWait
        nil,   // args
    ); err != nil {
        logger.Warn().Err(err).Msg("rabbitmq: queue declare failed")
        return err
    }

    body, err := json.Marshal(event)
    if err != nil {
        logger.Warn().Err(err).Msg("rabbitmq: marshal event failed")
        return err
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }
    if err := ch.PublishWithContext(ctx,
        "",    // default exchange
        queue, // routing key = queue name
        false, // mandatory
        false, // immediate
        pub,
    ); err != nil {
        logger.Warn().Err(err).Msg("rabbitmq: publish failed")
        return err
    }
    return nil
}

// NopPublisher drops every event.  Used when RABBITMQ_URL is unset and in
// tests.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
