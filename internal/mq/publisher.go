package mq

import (
	"encoding/json"
	"log"

	"baikuk-backoffice-api/internal/dal"

	"github.com/streadway/amqp"
)

// PerformanceSavedEvent 매출 저장 완료 이벤트
type PerformanceSavedEvent struct {
	PerformanceID uint64 `json:"performance_id"`
	Affiliation   string `json:"affiliation"`
	BalanceMonth  string `json:"balance_month,omitempty"` // YYYY-MM
	Action        string `json:"action"`                  // create | update
	Operator      string `json:"operator,omitempty"`
	SavedAt       int64  `json:"saved_at"`
	RetryCount    int    `json:"retry_count"`
}

func PublishPerformanceSaved(evt PerformanceSavedEvent) error {
	if dal.RabbitCh == nil {
		return nil
	}
	b, _ := json.Marshal(evt)
	err := dal.RabbitCh.Publish(
		"performance_events",
		"performance.saved",
		false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         b,
		},
	)
	if err != nil {
		log.Printf("publish performance.saved failed: %v", err)
	}
	return err
}
