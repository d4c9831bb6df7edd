package printer

import (
	"context"
	"fmt"
	"time"

	stan "github.com/nats-io/stan.go"

	"cafepos/pkg/logger"
)

// STANQueue publishes print jobs to a NATS Streaming subject.
type STANQueue struct {
	conn    stan.Conn
	subject string
}

// Dial connects to NATS Streaming.
func Dial(clusterID, clientID, url, subject string) (*STANQueue, error) {
	if clientID == "" {
		clientID = fmt.Sprintf("cafe-till-%d", time.Now().UnixNano())
	}
	sc, err := stan.Connect(clusterID, clientID, stan.NatsURL(url))
	if err != nil {
		return nil, fmt.Errorf("stan connect: %w", err)
	}
	return &STANQueue{conn: sc, subject: subject}, nil
}

// Print publishes j and waits for the server ack.
func (q *STANQueue) Print(ctx context.Context, j Job) error {
	raw, err := Encode(j)
	if err != nil {
		return err
	}
	if err := q.conn.Publish(q.subject, raw); err != nil {
		return fmt.Errorf("publish print job: %w", err)
	}
	return nil
}

// Close drops the connection.
func (q *STANQueue) Close() error {
	return q.conn.Close()
}

var _ Queue = (*STANQueue)(nil)

// Subscriber consumes print jobs with manual acks; a job whose handler
// fails is redelivered.
type Subscriber struct {
	ClusterID string
	ClientID  string
	URL       string
	Subject   string
	Durable   string
	Log       *logger.Logger
}

// Subscribe registers handler and returns once subscribed. The connection
// closes when ctx is done.
func (s *Subscriber) Subscribe(ctx context.Context, handler func(ctx context.Context, j Job) error) error {
	clientID := s.ClientID
	if clientID == "" {
		clientID = fmt.Sprintf("cafe-printer-%d", time.Now().UnixNano())
	}
	sc, err := stan.Connect(s.ClusterID, clientID, stan.NatsURL(s.URL))
	if err != nil {
		return fmt.Errorf("stan connect: %w", err)
	}
	go func() {
		<-ctx.Done()
		sc.Close()
	}()
	_, err = sc.QueueSubscribe(s.Subject, "cafe-printers", func(m *stan.Msg) {
		hCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		j, err := Decode(m.Data)
		if err != nil {
			// poison message; ack so it is not redelivered forever
			s.Log.Error(hCtx, "drop print job", "error", err)
			m.Ack()
			return
		}
		if err := handler(hCtx, j); err != nil {
			s.Log.Warn(hCtx, "print failed, awaiting redelivery", "job", j.ID, "error", err)
			return
		}
		if err := m.Ack(); err != nil {
			s.Log.Error(hCtx, "ack failed", "job", j.ID, "error", err)
		}
	}, stan.DurableName(s.Durable), stan.SetManualAckMode(), stan.AckWait(30*time.Second), stan.DeliverAllAvailable())
	return err
}
