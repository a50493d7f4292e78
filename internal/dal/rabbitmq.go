package dal

import (
	"log"

	"baikuk-backoffice-api/internal/config"

	"github.com/streadway/amqp"
)

var RabbitConn *amqp.Connection
var RabbitCh *amqp.Channel

func InitRabbitMQ() {
	url := config.C.RabbitMQ.URL
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Fatalf("rabbitmq dial failed: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("rabbitmq channel failed: %v", err)
	}

	// exchange & queues
	if err := ch.ExchangeDeclare("performance_events", "topic", true, false, false, false, nil); err != nil {
		log.Fatalf("exchange declare failed: %v", err)
	}
	if _, err := ch.QueueDeclare("performance_saved", true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare performance_saved failed: %v", err)
	}
	if err := ch.QueueBind("performance_saved", "performance.saved", "performance_events", false, nil); err != nil {
		log.Fatalf("queue bind performance_saved failed: %v", err)
	}

	RabbitConn = conn
	RabbitCh = ch
}
