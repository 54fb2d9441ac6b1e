package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fitfood-app/backend/internal/logger"
	"github.com/fitfood-app/backend/internal/models"
)

// TelegramNotifier posts new-order messages to the Telegram bot API.
type TelegramNotifier struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// NewTelegramNotifier creates a notifier against the given API base URL
// (the production value is https://api.telegram.org).
func NewTelegramNotifier(baseURL string) *TelegramNotifier {
	return &TelegramNotifier{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     logger.L(),
	}
}

// Send formats the order and posts it to the configured chat. The caller
// treats any error as log-only; a failed notification never affects the
// order itself.
func (n *TelegramNotifier) Send(ctx context.Context, order models.Order, user models.User, settings models.AdminSettings) error {
	if settings.TelegramToken == "" || settings.TelegramChatID == "" {
		n.log.Warn("[Telegram] settings are not configured, skipping notification")
		return nil
	}

	payload := map[string]string{
		"chat_id":    settings.TelegramChatID,
		"text":       formatOrderMessage(order, user),
		"parse_mode": "Markdown",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, settings.TelegramToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var result struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("telegram rejected the message: %s", result.Description)
	}

	n.log.Info("[Telegram] notification sent", zap.String("order", order.ID))
	return nil
}

// formatOrderMessage renders the multi-line Markdown summary sent to the
// admin chat.
func formatOrderMessage(order models.Order, user models.User) string {
	var b strings.Builder

	name := user.FullName
	if name == "" {
		name = user.Email
	}
	phone := user.Phone
	if phone == "" {
		phone = "ثبت نشده"
	}

	b.WriteString("🔔 **سفارش جدید دریافت شد!**\n\n")
	fmt.Fprintf(&b, "👤 **کاربر:** %s\n", name)
	fmt.Fprintf(&b, "📞 **تلفن:** %s\n", phone)
	b.WriteString("\n---\n\n")
	fmt.Fprintf(&b, "🚚 **روش تحویل:** %s\n", order.DeliveryMethod)
	fmt.Fprintf(&b, "📍 **آدرس:** %s\n", order.Address)
	fmt.Fprintf(&b, "⏰ **ساعت تحویل:** %s\n", order.DeliveryTime)
	b.WriteString("\n---\n\n")
	b.WriteString("🛍 **آیتم‌های سفارش:**\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "  - %s (x%d) - %s تومان\n", item.Name, item.Quantity, formatPrice(item.EffectivePrice()))
	}
	if len(order.Drinks) > 0 {
		b.WriteString("\n🥤 **نوشیدنی‌ها:**\n")
		for _, drink := range order.Drinks {
			fmt.Fprintf(&b, "  - %s (x%d) - %s تومان\n", drink.Name, drink.Quantity, formatPrice(drink.Price))
		}
	}
	b.WriteString("\n---\n\n")
	fmt.Fprintf(&b, "💳 **روش پرداخت:** %s\n", order.PaymentMethod)
	if order.PaymentMethod == models.PaymentCardToCard && order.ReceiptImage != "" {
		b.WriteString("🧾 **وضعیت رسید:** رسید آپلود شد (در پنل مدیریت بررسی کنید).\n")
	}
	b.WriteString("\n---\n\n")
	fmt.Fprintf(&b, "💰 **مبلغ نهایی:** **%s تومان**\n", formatPrice(order.TotalPrice))

	return b.String()
}

// formatPrice renders an amount with thousands separators.
func formatPrice(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
