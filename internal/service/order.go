package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fitfood-app/backend/internal/models"
)

// OrderDraft carries the checkout choices. The items themselves are
// snapshotted from the current cart, not supplied by the caller.
type OrderDraft struct {
	Drinks         []models.OrderDrink
	PaymentMethod  models.PaymentMethod
	DeliveryMethod models.DeliveryMethod
	Address        string
	DeliveryTime   string
	ReceiptImage   string
}

// CreateOrder places an order for the current user: it freezes the cart
// into the order, recomputes the total from the constituent prices,
// persists the order, clears the cart and finally fires the Telegram
// notification when one is configured. The notification is
// fire-and-forget; its failure never fails the order.
func (a *App) CreateOrder(ctx context.Context, draft OrderDraft) (*models.Order, error) {
	user := a.session.User()
	if user == nil {
		return nil, ErrNotAuthenticated
	}

	items := a.session.Cart()
	order := models.Order{
		ID:             fmt.Sprintf("order_%d", a.now().UnixMilli()),
		UserID:         user.Email,
		Items:          items,
		Drinks:         draft.Drinks,
		TotalPrice:     orderTotal(items, draft.Drinks),
		PaymentMethod:  draft.PaymentMethod,
		DeliveryMethod: draft.DeliveryMethod,
		Address:        draft.Address,
		DeliveryTime:   draft.DeliveryTime,
		Status:         models.OrderPending,
		CreatedAt:      a.now().UnixMilli(),
	}
	if draft.PaymentMethod == models.PaymentCardToCard {
		order.ReceiptImage = draft.ReceiptImage
	}

	a.orders.Append(ctx, order)
	a.ClearCart(ctx)

	settings := a.settings.Get(ctx)
	if a.notifier != nil && settings.TelegramToken != "" && settings.TelegramChatID != "" {
		if err := a.notifier.Send(ctx, order, *user, settings); err != nil {
			a.log.Error("[App] order notification failed", zap.String("order", order.ID), zap.Error(err))
		}
	}

	return &order, nil
}

// orderTotal sums effective item prices and drink prices by quantity.
func orderTotal(items []models.OrderItem, drinks []models.OrderDrink) int64 {
	var total int64
	for _, item := range items {
		total += item.EffectivePrice() * int64(item.Quantity)
	}
	for _, drink := range drinks {
		total += drink.Price * int64(drink.Quantity)
	}
	return total
}
