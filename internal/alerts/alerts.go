package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Gangesh855/factory-ops/internal/models"
	"github.com/Gangesh855/factory-ops/internal/redissvc"
)

var (
	alertFrom        = os.Getenv("ALERT_FROM")  // sender email
	alertTo          = os.Getenv("ALERT_TO")    // receiver email
	smtpServer       = os.Getenv("SMTP_SERVER") // smtp.example.com
	smtpPort         = os.Getenv("SMTP_PORT")   // e.g., 587
	smtpUser         = os.Getenv("SMTP_USER")
	smtpPassword     = os.Getenv("SMTP_PASS")
	smtpAuthDisabled = os.Getenv("SMTP_AUTH_DISABLED")

	rdb *redis.Client
	ctx context.Context
)

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

// SendLowStockAlertEmail notifies operations that an item dropped to or
// below its reorder level. The send is fire-and-forget.
func SendLowStockAlertEmail(item models.Item) error {
	subject := fmt.Sprintf("⚠️ LOW STOCK: %s (%s)", item.Name, item.SKU)
	body := fmt.Sprintf("SKU: %s\nStore: %d\nQuantity: %d\nReorder level: %d\nTime: %s",
		item.SKU, item.StoreID, item.Quantity, item.ReorderLevel, time.Now().Format(time.RFC3339))

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", alertFrom, alertTo, subject, body)

	addr := fmt.Sprintf("%s:%s", smtpServer, smtpPort)
	auth := smtp.PlainAuth("", smtpUser, smtpPassword, smtpServer)

	if smtpAuthDisabled != "" {
		auth = nil
	}

	go func() {
		err := smtp.SendMail(addr, auth, alertFrom, []string{alertTo}, []byte(msg))
		if err != nil {
			log.Printf("Failed to send alert email: %v\n", err)
		}
	}()

	logLowStockEvent(item)

	return nil
}

type LowStockLogEntry struct {
	SKU          string    `json:"sku"`
	StoreID      int       `json:"store_id"`
	Quantity     int       `json:"quantity"`
	ReorderLevel int       `json:"reorder_level"`
	Time         time.Time `json:"time"`
}

const DailyLowStockLogKey = "alerts:lowstock:daily"

func logLowStockEvent(item models.Item) {
	if rdb == nil {
		return
	}

	entry := LowStockLogEntry{
		SKU:          item.SKU,
		StoreID:      item.StoreID,
		Quantity:     item.Quantity,
		ReorderLevel: item.ReorderLevel,
		Time:         time.Now().UTC(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		log.Printf("Failed to marshal low stock entry: %v", err)
		return
	}
	if err := rdb.RPush(ctx, DailyLowStockLogKey, data).Err(); err != nil {
		log.Printf("Failed to record low stock event: %v", err)
	}
}

// StartDailyLowStockSummary periodically drains the low-stock event list and
// logs a digest.
func StartDailyLowStockSummary(interval time.Duration) {
	for {
		time.Sleep(interval)
		if rdb == nil {
			continue
		}

		entries, err := rdb.LRange(ctx, DailyLowStockLogKey, 0, -1).Result()
		if err != nil {
			log.Printf("Failed to read low stock log: %v", err)
			continue
		}
		if len(entries) == 0 {
			continue
		}

		skus := map[string]int{}
		for _, raw := range entries {
			var e LowStockLogEntry
			if json.Unmarshal([]byte(raw), &e) == nil {
				skus[e.SKU]++
			}
		}

		log.Printf("Low stock summary: %d events across %d SKUs in the last period", len(entries), len(skus))
		if err := rdb.Del(ctx, DailyLowStockLogKey).Err(); err != nil {
			log.Printf("Failed to clear low stock log: %v", err)
		}
	}
}
