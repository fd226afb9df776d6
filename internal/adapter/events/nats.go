package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vidlearn/internal/domain"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// DefaultSubject carries GenerationCompleted notifications.
const DefaultSubject = "vidlearn.generation.completed"

// Publisher is the subset of *nats.Conn the NATS publisher uses.
type Publisher interface {
	Publish(subject string, data []byte) error
}

type NATSPublisher struct {
	conn    Publisher
	nc      *nats.Conn
	subject string
	logger  *zap.Logger
}

// Connect dials the NATS server. Reconnects are retried in the background so a
// broker outage never blocks startup.
func Connect(url, token, subject string, logger *zap.Logger) (*NATSPublisher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := []nats.Option{
		nats.Name("vidlearn"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("NATS reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	p := NewNATSPublisher(nc, subject, logger)
	p.nc = nc
	return p, nil
}

func NewNATSPublisher(conn Publisher, subject string, logger *zap.Logger) *NATSPublisher {
	if subject == "" {
		subject = DefaultSubject
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NATSPublisher{conn: conn, subject: subject, logger: logger}
}

func (p *NATSPublisher) PublishGenerationCompleted(ctx context.Context, evt domain.GenerationCompleted) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	if err := p.conn.Publish(p.subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", p.subject, err)
	}
	p.logger.Debug("Published generation event",
		zap.String("subject", p.subject),
		zap.String("run_id", evt.RunID),
	)
	return nil
}

// Close drains the connection when the publisher owns it.
func (p *NATSPublisher) Close() {
	if p.nc == nil {
		return
	}
	if err := p.nc.Drain(); err != nil {
		p.logger.Warn("NATS drain failed", zap.Error(err))
		p.nc.Close()
	}
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishGenerationCompleted(context.Context, domain.GenerationCompleted) error {
	return nil
}

var (
	_ domain.EventPublisher = (*NATSPublisher)(nil)
	_ domain.EventPublisher = NopPublisher{}
)
