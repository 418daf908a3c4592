package order

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

const SubjectPlaced = "orders.placed"

// Publisher announces placed orders to whoever listens (kitchen display,
// delivery dispatch). Failures never undo a placement.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, o *Order) error
	Close()
}

type PlacedEvent struct {
	OrderID           string    `json:"orderId"`
	CustomerID        string    `json:"customerId"`
	TotalAmount       string    `json:"totalAmount"`
	Items             []Item    `json:"items"`
	DeliveryAddress   string    `json:"deliveryAddress"`
	Phone             string    `json:"phone"`
	CreatedAt         time.Time `json:"createdAt"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

func NewPlacedEvent(o *Order) PlacedEvent {
	return PlacedEvent{
		OrderID:           o.ID,
		CustomerID:        o.CustomerID,
		TotalAmount:       o.TotalAmount.String(),
		Items:             o.Items,
		DeliveryAddress:   o.DeliveryAddress,
		Phone:             o.Phone,
		CreatedAt:         o.CreatedAt,
		EstimatedDelivery: o.EstimatedDelivery,
	}
}

type NatsPublisher struct {
	nc      *nats.Conn
	subject string
}

func NewNatsPublisher(url string) (*NatsPublisher, error) {
	var nc *nats.Conn
	var err error
	for i := 0; i < 3; i++ {
		nc, err = nats.Connect(url,
			nats.Name("verduleria-server"),
			nats.MaxReconnects(5),
			nats.ReconnectWait(2*time.Second),
			nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
				log.Printf("[events] nats disconnected err=%v", err)
			}),
			nats.ReconnectHandler(func(nc *nats.Conn) {
				log.Printf("[events] nats reconnected url=%s", nc.ConnectedUrl())
			}),
		)
		if err == nil {
			log.Printf("[events] connected to nats url=%s", url)
			return &NatsPublisher{nc: nc, subject: SubjectPlaced}, nil
		}
		log.Printf("[events] nats connect attempt=%d err=%v", i+1, err)
		if i < 2 {
			time.Sleep(2 * time.Second)
		}
	}
	return nil, fmt.Errorf("connect to nats after retries: %w", err)
}

func (p *NatsPublisher) PublishOrderPlaced(ctx context.Context, o *Order) error {
	data, err := json.Marshal(NewPlacedEvent(o))
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.nc.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", p.subject, err)
	}
	timeout := 2 * time.Second
	if dl, ok := ctx.Deadline(); ok {
		timeout = time.Until(dl)
	}
	if err := p.nc.FlushTimeout(timeout); err != nil {
		return fmt.Errorf("flush %s: %w", p.subject, err)
	}
	return nil
}

func (p *NatsPublisher) Close() {
	if p.nc != nil && !p.nc.IsClosed() {
		p.nc.Close()
		log.Printf("[events] nats connection closed")
	}
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderPlaced(context.Context, *Order) error { return nil }
func (NoopPublisher) Close()                                           {}
