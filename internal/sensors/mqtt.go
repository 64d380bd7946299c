package sensors

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/blaisecz/wellness-monitor/internal/domain"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultMQTTTopic matches wellness/<deviceId>/readings for every device.
const DefaultMQTTTopic = "wellness/+/readings"

// Ingester stores raw records for a device.
type Ingester interface {
	Ingest(ctx context.Context, deviceID uuid.UUID, records []domain.RawRecord, source domain.ReadingSource) (*domain.IngestReadingsResponse, error)
}

// MQTTConfig configures the broker connection of an MQTTFeed.
type MQTTConfig struct {
	Broker   string
	ClientID string
	Username string
	Password string
	Topic    string
	QoS      byte
}

// MQTTFeed subscribes to device reading topics and hands every payload to an Ingester.
type MQTTFeed struct {
	cfg      MQTTConfig
	ingester Ingester
	logger   *zap.Logger
	client   mqtt.Client
}

func NewMQTTFeed(cfg MQTTConfig, ingester Ingester, logger *zap.Logger) *MQTTFeed {
	if cfg.Topic == "" {
		cfg.Topic = DefaultMQTTTopic
	}
	if cfg.ClientID == "" {
		cfg.ClientID = "wellness-monitor-" + uuid.NewString()[:8]
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warn("mqtt connection lost", zap.Error(err))
	})

	return &MQTTFeed{
		cfg:      cfg,
		ingester: ingester,
		logger:   logger,
		client:   mqtt.NewClient(opts),
	}
}

// Run connects, subscribes and blocks until ctx is cancelled.
func (f *MQTTFeed) Run(ctx context.Context) error {
	if token := f.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	defer f.client.Disconnect(250)

	handler := func(_ mqtt.Client, msg mqtt.Message) {
		if err := f.handleMessage(ctx, msg.Topic(), msg.Payload()); err != nil {
			f.logger.Warn("dropping mqtt payload",
				zap.String("topic", msg.Topic()),
				zap.Error(err),
			)
		}
	}
	if token := f.client.Subscribe(f.cfg.Topic, f.cfg.QoS, handler); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", f.cfg.Topic, token.Error())
	}
	f.logger.Info("mqtt feed subscribed",
		zap.String("broker", f.cfg.Broker),
		zap.String("topic", f.cfg.Topic),
	)

	<-ctx.Done()

	if token := f.client.Unsubscribe(f.cfg.Topic); token.WaitTimeout(2*time.Second) && token.Error() != nil {
		f.logger.Warn("mqtt unsubscribe failed", zap.Error(token.Error()))
	}
	return nil
}

func (f *MQTTFeed) handleMessage(ctx context.Context, topic string, payload []byte) error {
	deviceID, err := DeviceFromTopic(topic)
	if err != nil {
		return err
	}

	records, err := ParseRecords(payload)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return domain.ErrNoSensorData
	}

	res, err := f.ingester.Ingest(ctx, deviceID, records, domain.ReadingSourceMQTT)
	if err != nil {
		return fmt.Errorf("ingest mqtt readings: %w", err)
	}
	f.logger.Debug("mqtt readings stored",
		zap.String("device_id", deviceID.String()),
		zap.Int("stored", res.Stored),
	)
	return nil
}

// DeviceFromTopic extracts the device id from wellness/<deviceId>/readings.
func DeviceFromTopic(topic string) (uuid.UUID, error) {
	parts := strings.Split(topic, "/")
	if len(parts) < 3 || parts[0] != "wellness" {
		return uuid.Nil, fmt.Errorf("unexpected topic %q: %w", topic, domain.ErrInvalidInput)
	}
	id, err := uuid.Parse(parts[1])
	if err != nil {
		return uuid.Nil, fmt.Errorf("topic %q has no device id: %w", topic, domain.ErrInvalidInput)
	}
	return id, nil
}
