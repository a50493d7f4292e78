package mq

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/streadway/amqp"

	"baikuk-backoffice-api/internal/dal"
	"baikuk-backoffice-api/internal/notify"
	"baikuk-backoffice-api/internal/settlement"
)

const maxRetry = 3

// StartConsumers 매출 저장 이벤트를 소비해 해당 지점의 월별 정산
// 캐시를 갱신한다.
func StartConsumers(stl *settlement.Settlement) {
	if dal.RabbitCh == nil {
		log.Println("RabbitMQ channel not initialized")
		return
	}
	msgs, err := dal.RabbitCh.Consume("performance_saved", "", false, false, false, false, nil)
	if err != nil {
		log.Printf("consume performance_saved failed: %v", err)
		return
	}
	for d := range msgs {
		go handleSaved(stl, d)
	}
}

func handleSaved(stl *settlement.Settlement, d amqp.Delivery) {
	var evt PerformanceSavedEvent
	if err := json.Unmarshal(d.Body, &evt); err != nil {
		log.Printf("[SETTLEMENT] event unmarshal err: %v", err)
		d.Nack(false, false)
		return
	}

	if evt.Affiliation == "" {
		// 지점 미지정 매출은 집계 대상이 아니다
		d.Ack(false)
		return
	}

	if err := stl.RefreshBranchCache(evt.Affiliation); err != nil {
		log.Printf("[SETTLEMENT] refresh failed for %s: %v", evt.Affiliation, err)

		if evt.RetryCount < maxRetry {
			evt.RetryCount++
			retryBody, _ := json.Marshal(evt)
			_ = dal.RabbitCh.Publish(
				"", "performance_saved", false, false,
				amqp.Publishing{
					ContentType: "application/json",
					Body:        retryBody,
				},
			)
			log.Printf("[SETTLEMENT] retrying refresh for %s (attempt %d)", evt.Affiliation, evt.RetryCount)
		} else {
			log.Printf("[SETTLEMENT] max retry reached for %s", evt.Affiliation)
			if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
				notify.NotifySendMsgToTG(chatID, fmt.Sprintf(
					"정산 캐시 갱신 실패: 지점=%s, 매출=%d", evt.Affiliation, evt.PerformanceID))
			}
		}

		d.Nack(false, false)
		return
	}

	d.Ack(false)
}
