package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

type NatsPublisher struct {
	nc *nats.Conn
}

// ConnectNats dials url and returns a publisher on the connection.
func ConnectNats(url string) (*NatsPublisher, error) {
	opts := []nats.Option{
		nats.Name("task-service"),
		nats.Timeout(5 * time.Second),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(10),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Printf("NATS disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Println("NATS reconnected")
		}),
		nats.DrainTimeout(10 * time.Second),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	log.Println("connected to NATS")
	return &NatsPublisher{nc: nc}, nil
}

func (p *NatsPublisher) Publish(_ context.Context, subject, id string, data any) error {
	if p.nc == nil || !p.nc.IsConnected() {
		return nats.ErrConnectionClosed
	}

	payload, err := json.Marshal(Event{
		Subject:    subject,
		ID:         id,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	})
	if err != nil {
		return fmt.Errorf("encode %s event: %w", subject, err)
	}

	if err := p.nc.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// Close drains pending messages before closing the connection.
func (p *NatsPublisher) Close() {
	if p.nc == nil || p.nc.IsClosed() {
		return
	}
	if err := p.nc.Drain(); err != nil {
		log.Printf("error draining NATS connection: %v", err)
		p.nc.Close()
	}
	log.Println("NATS connection closed")
}
