package kafka

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/segmentio/kafka-go"

	"ms-attendance/internal/logger"
)

// EnsureTopicsExist creates the check-in stream topics on the controller
// broker if they are missing. Existing topics are left untouched.
func EnsureTopicsExist(brokers []string, topics []string, log *logger.Logger) error {
	conn, err := kafka.Dial("tcp", brokers[0])
	if err != nil {
		return fmt.Errorf("dial broker %s: %w", brokers[0], err)
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return fmt.Errorf("resolve controller: %w", err)
	}
	controllerConn, err := kafka.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return fmt.Errorf("dial controller: %w", err)
	}
	defer controllerConn.Close()

	for _, topic := range topics {
		err := controllerConn.CreateTopics(kafka.TopicConfig{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		})
		switch {
		case err == nil:
			log.LogKafka("TOPIC", topic, "created")
		case strings.Contains(err.Error(), "already exists"):
			log.LogKafka("TOPIC", topic, "already exists")
		default:
			log.Warn("KAFKA", fmt.Sprintf("Failed to create topic %s: %v", topic, err))
		}
	}
	return nil
}
