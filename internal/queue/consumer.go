package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartDocumentConsumer connects to RabbitMQ, declares the
// sale.recorded and invoice.issued queues (durable), and starts
// consuming messages. Each message is appended to logs/documents.log
// in a single-line, human-friendly format, giving an audit trail of
// every ticket and invoice number handed out. The function runs a
// reconnect loop; it keeps running and logs any processing errors
// while rejecting the offending message so the server continues
// operating.
func StartDocumentConsumer() error {
	url := brokerURL()

	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("document-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeLoop(conn); err != nil {
			log.Printf("document-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
			continue
		}
	}
}

func consumeLoop(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("document-consumer: set QoS failed: %v", err)
	}

	for _, name := range []string{SaleQueueName, InvoiceQueueName} {
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			return fmt.Errorf("queue declare %s: %w", name, err)
		}
	}

	saleMsgs, err := ch.Consume(SaleQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume %s: %w", SaleQueueName, err)
	}
	invoiceMsgs, err := ch.Consume(InvoiceQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume %s: %w", InvoiceQueueName, err)
	}

	for {
		select {
		case d, ok := <-saleMsgs:
			if !ok {
				return errors.New("sale deliveries channel closed")
			}
			ackOrReject(d, handleSaleMessage(d.Body))
		case d, ok := <-invoiceMsgs:
			if !ok {
				return errors.New("invoice deliveries channel closed")
			}
			ackOrReject(d, handleInvoiceMessage(d.Body))
		}
	}
}

func ackOrReject(d amqp.Delivery, err error) {
	if err != nil {
		log.Printf("document-consumer: handle message failed: %v", err)
		_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
		return
	}
	_ = d.Ack(false)
}

func handleSaleMessage(body []byte) error {
	var ev SaleRecordedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	line := fmt.Sprintf("[%s] Sale recorded | sale_id=%d | ticket=%d | buyer=%d | sales_person=%d | qty=%d | total=%d | method=%q\n",
		ev.SaleDate, ev.SaleID, ev.Ticket, ev.Buyer, ev.SalesPerson, ev.Quantity, ev.TotalPrice, ev.PaymentMethod)
	return appendDocumentLog(line)
}

func handleInvoiceMessage(body []byte) error {
	var ev InvoiceIssuedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	line := fmt.Sprintf("Invoice issued | invoice_id=%d | receive=%d | sales_person=%d | total=%d | due=%q\n",
		ev.InvoiceID, ev.Receive, ev.SalesPerson, ev.TotalAmount, ev.DueDate)
	return appendDocumentLog(line)
}

func appendDocumentLog(line string) error {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	fpath := filepath.Join("logs", "documents.log")
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
