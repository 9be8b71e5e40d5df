package kafka

import (
	"encoding/json"
	"log"
	"time"

	"github.com/IBM/sarama"

	"pos-service/model"
)

var Producer sarama.SyncProducer

// InitProducer connects the sarama producer. With no broker configured the
// service runs without events; every publish below is nil-guarded.
func InitProducer(broker string) {
	if broker == "" {
		log.Println("KAFKA_BROKER not set, sale events disabled")
		return
	}

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	var err error
	for i := 1; i <= 5; i++ {
		Producer, err = sarama.NewSyncProducer([]string{broker}, config)
		if err == nil {
			log.Printf("Kafka producer connected to %s", broker)
			return
		}

		log.Printf("Failed to connect to Kafka (try %d/5): %v", i, err)
		time.Sleep(3 * time.Second)
	}

	log.Fatalf("Could not connect to Kafka after 5 attempts: %v", err)
}

// PublishSaleCompletedEvent announces a committed transaction. Delivery is
// best effort; a publish failure never fails the sale itself.
func PublishSaleCompletedEvent(trx *model.Transaction) {
	if Producer == nil {
		return
	}

	event := map[string]interface{}{
		"event_type": "sale.completed",
		"data": map[string]interface{}{
			"transaction_id": trx.ID,
			"owner_id":       trx.OwnerID,
			"customer_id":    trx.CustomerID,
			"total":          trx.Total,
			"total_discount": trx.TotalDiscount,
			"payment_method": trx.PaymentMethod,
			"completed_at":   trx.CreatedAt.Format(time.RFC3339),
		},
	}

	messageBytes, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal sale event: %v", err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: "sale.completed",
		Value: sarama.ByteEncoder(messageBytes),
	}

	if _, _, err := Producer.SendMessage(msg); err != nil {
		log.Printf("Failed to send Kafka message: %v", err)
	}
}
