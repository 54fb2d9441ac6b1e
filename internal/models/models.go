package models

// FoodItem is a dish on a daily menu.
type FoodItem struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         int64  `json:"price"`
	Image         string `json:"image"`
	DiscountPrice *int64 `json:"discountPrice,omitempty"`
}

// EffectivePrice returns the discounted price when one is set.
func (f FoodItem) EffectivePrice() int64 {
	if f.DiscountPrice != nil {
		return *f.DiscountPrice
	}
	return f.Price
}

// DayKey identifies one of the seven weekday menus.
type DayKey string

const (
	Saturday  DayKey = "saturday"
	Sunday    DayKey = "sunday"
	Monday    DayKey = "monday"
	Tuesday   DayKey = "tuesday"
	Wednesday DayKey = "wednesday"
	Thursday  DayKey = "thursday"
	Friday    DayKey = "friday"
)

// Weekdays lists the day keys in menu order, Saturday first.
var Weekdays = []DayKey{Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday}

// Valid reports whether d is one of the seven weekday keys.
func (d DayKey) Valid() bool {
	for _, day := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// DailyMenus maps every weekday key to that day's menu.
type DailyMenus map[DayKey][]FoodItem

// CartItem is a food item plus the quantity in the cart.
type CartItem struct {
	FoodItem
	Quantity int `json:"quantity"`
}

// OrderItem is a cart line frozen into an order.
type OrderItem = CartItem

// Drink is an entry of the fixed drinks catalog.
type Drink struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// OrderDrink is a drink plus the quantity chosen at checkout.
type OrderDrink struct {
	Drink
	Quantity int `json:"quantity"`
}

// PaymentMethod is the label shown to customers at checkout.
type PaymentMethod string

const (
	PaymentGateway        PaymentMethod = "درگاه پرداخت"
	PaymentCardToCard     PaymentMethod = "کارت به کارت"
	PaymentCashOnDelivery PaymentMethod = "پرداخت درب منزل"
)

// DeliveryMethod is the label for how an order is handed over.
type DeliveryMethod string

const (
	DeliveryCourier DeliveryMethod = "ارسال با پیک"
	DeliveryPickup  DeliveryMethod = "تحویل حضوری"
)

// OrderStatus is reserved; orders are created Pending and never transition.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderCompleted OrderStatus = "Completed"
	OrderCancelled OrderStatus = "Cancelled"
)

// Order is an immutable checkout record. Address is resolved to a plain
// string at creation time, not a live reference.
type Order struct {
	ID            string         `json:"id"`
	UserID        string         `json:"userId"`
	Items         []OrderItem    `json:"items"`
	Drinks        []OrderDrink   `json:"drinks"`
	TotalPrice    int64          `json:"totalPrice"`
	PaymentMethod PaymentMethod  `json:"paymentMethod"`
	DeliveryMethod DeliveryMethod `json:"deliveryMethod"`
	Address       string         `json:"address"`
	DeliveryTime  string         `json:"deliveryTime"`
	Status        OrderStatus    `json:"status"`
	CreatedAt     int64          `json:"createdAt"`
	ReceiptImage  string         `json:"receiptImage,omitempty"`
}

// Address is a saved delivery address owned by one user.
type Address struct {
	ID          string `json:"id"`
	Alias       string `json:"alias"`
	FullAddress string `json:"fullAddress"`
}

// EnhancementUsage tracks the per-user daily photo enhancement quota.
type EnhancementUsage struct {
	Count     int   `json:"count"`
	LastReset int64 `json:"lastReset"`
}

// User is keyed by email; the password is stored as given and compared
// verbatim at login.
type User struct {
	Email             string           `json:"email"`
	Password          string           `json:"password"`
	FullName          string           `json:"fullName,omitempty"`
	Phone             string           `json:"phone,omitempty"`
	Addresses         []Address        `json:"addresses"`
	CreatedAt         int64            `json:"createdAt"`
	DailyEnhancements EnhancementUsage `json:"dailyEnhancements"`
}

// EnhancedImage is one entry of the append-only photo lab gallery.
// Both images are base64 encoded JPEG data.
type EnhancedImage struct {
	ID            string `json:"id"`
	UserID        string `json:"userId"`
	OriginalImage string `json:"originalImage"`
	EnhancedImage string `json:"enhancedImage"`
	CreatedAt     int64  `json:"createdAt"`
}

// AdminSettings is the singleton admin configuration record. It is
// overwritten wholesale on every save.
type AdminSettings struct {
	TelegramToken    string `json:"telegramToken"`
	TelegramChatID   string `json:"telegramChatId"`
	PlannerAPIKey    string `json:"plannerApiKey"`
	PlannerPrompt    string `json:"plannerPrompt"`
	PhotoLabAPIKey   string `json:"photoLabApiKey"`
	PhotoLabPrompt   string `json:"photoLabPrompt"`
	ContactAddress   string `json:"contactAddress"`
	ContactPhone     string `json:"contactPhone"`
	ContactInstagram string `json:"contactInstagram"`
	SiteURL          string `json:"siteUrl"`
}
