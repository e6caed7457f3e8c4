// mqtt.go - Publishes prediction events to an MQTT broker

package mqtt // Declares the package name

import ( // Import required packages
	"encoding/json" // Event serialization
	"fmt"           // Error wrapping
	"time"          // Timeouts and timestamps

	"caloriq-backend/models" // Prediction result

	paho "github.com/eclipse/paho.mqtt.golang" // MQTT client
)

const ( // Client timing
	connectTimeout = 5 * time.Second // Max wait for the initial connection
	publishTimeout = 2 * time.Second // Max wait for a publish to be handed off
	disconnectWait = 250             // Milliseconds allowed to flush on Close
)

// Event is the JSON document published for each prediction.
type Event struct {
	Label              string    `json:"label"`
	Confidence         float64   `json:"confidence"`
	PredictedIndex     int       `json:"predicted_index"`
	CaloriesPerServing float64   `json:"calories_per_serving"`
	Path               string    `json:"path"` // "primary" or "fallback"
	At                 time.Time `json:"at"`
}

// NewEvent builds the event for pred served by path.
func NewEvent(pred *models.Prediction, path string, at time.Time) Event {
	return Event{
		Label:              pred.Label,
		Confidence:         pred.Confidence,
		PredictedIndex:     pred.Index,
		CaloriesPerServing: pred.Calories.CaloriesPerServing,
		Path:               path,
		At:                 at.UTC(),
	}
}

// Publisher sends events to one topic. A nil *Publisher is a valid no-op.
type Publisher struct {
	client paho.Client
	topic  string
}

// Connect dials broker. An empty broker disables publishing and returns a nil
// Publisher with no error.
func Connect(broker, clientID, topic string) (*Publisher, error) {
	if broker == "" {
		return nil, nil
	}
	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetConnectTimeout(connectTimeout).
		SetAutoReconnect(true)
	client := paho.NewClient(opts)

	token := client.Connect() // Connect to the MQTT broker
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("connect to %s: timed out", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to %s: %w", broker, err)
	}
	return &Publisher{client: client, topic: topic}, nil
}

// PublishPrediction publishes pred at QoS 0.
func (p *Publisher) PublishPrediction(pred *models.Prediction, path string) error {
	if p == nil {
		return nil
	}
	payload, err := json.Marshal(NewEvent(pred, path, time.Now()))
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	token := p.client.Publish(p.topic, 0, false, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish to %s: timed out", p.topic)
	}
	return token.Error()
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	p.client.Disconnect(disconnectWait)
}
