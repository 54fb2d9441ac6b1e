package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fitfood-app/backend/internal/logger"
	"github.com/fitfood-app/backend/internal/models"
	"github.com/fitfood-app/backend/internal/repository"
	"github.com/fitfood-app/backend/internal/storage"
)

// adminPassword is the single shared admin panel secret.
const adminPassword = "f26560291b"

// dailyEnhancementLimit caps photo enhancements per user per calendar day.
const dailyEnhancementLimit = 2

// App is the application facade: the single surface through which handlers
// invoke authentication, cart mutation, order placement and the admin
// accessors.
type App struct {
	session  *Session
	users    *repository.Collection[models.User]
	orders   *repository.Collection[models.Order]
	images   *repository.Collection[models.EnhancedImage]
	menus    *repository.MenuRepository
	settings *repository.SettingsRepository
	notifier *TelegramNotifier

	now func() time.Time
	log *zap.Logger
}

// NewApp wires the facade against a store. The notifier may be nil, in
// which case order notifications are skipped entirely.
func NewApp(ctx context.Context, store storage.Store, notifier *TelegramNotifier) *App {
	return &App{
		session:  NewSession(ctx, store),
		users:    repository.NewCollection[models.User](store, storage.KeyUsers),
		orders:   repository.NewCollection[models.Order](store, storage.KeyOrders),
		images:   repository.NewCollection[models.EnhancedImage](store, storage.KeyEnhancedImages),
		menus:    repository.NewMenuRepository(store),
		settings: repository.NewSettingsRepository(store),
		notifier: notifier,
		now:      time.Now,
		log:      logger.L(),
	}
}

// Session exposes the session state object, e.g. for subscriptions.
func (a *App) Session() *Session { return a.session }

// CurrentUser returns a copy of the logged-in user, or nil.
func (a *App) CurrentUser() *models.User { return a.session.User() }

// IsAdmin reports whether an admin session is active.
func (a *App) IsAdmin() bool { return a.session.IsAdmin() }

// Login authenticates by case-insensitive email lookup. A known email with
// a wrong password fails with ErrInvalidCredentials; an unknown email is
// registered on the spot with the given credentials.
func (a *App) Login(ctx context.Context, email, password string) (*models.User, error) {
	existing, found := a.users.Find(ctx, func(u models.User) bool {
		return strings.EqualFold(u.Email, email)
	})

	if found {
		if existing.Password != password {
			return nil, ErrInvalidCredentials
		}
		a.session.setUser(ctx, &existing)
		return &existing, nil
	}

	user := models.User{
		Email:     email,
		Password:  password,
		Addresses: []models.Address{},
		CreatedAt: a.now().UnixMilli(),
		DailyEnhancements: models.EnhancementUsage{
			Count:     0,
			LastReset: a.now().UnixMilli(),
		},
	}
	a.users.Append(ctx, user)
	a.session.setUser(ctx, &user)
	a.log.Info("[App] registered new user", zap.String("email", email))
	return &user, nil
}

// Logout clears the current user and any admin session.
func (a *App) Logout(ctx context.Context) {
	a.session.setUser(ctx, nil)
	a.session.setAdmin(ctx, false)
}

// AdminLogin compares against the shared admin secret. Failure has no side
// effects.
func (a *App) AdminLogin(ctx context.Context, password string) bool {
	if password != adminPassword {
		return false
	}
	a.session.setAdmin(ctx, true)
	return true
}

// AdminLogout ends the admin session.
func (a *App) AdminLogout(ctx context.Context) {
	a.session.setAdmin(ctx, false)
}

// UserUpdate carries the profile fields that can be merged into the
// current user. Nil fields are left unchanged.
type UserUpdate struct {
	FullName          *string
	Phone             *string
	Addresses         *[]models.Address
	DailyEnhancements *models.EnhancementUsage
}

// UpdateUser merges fields into the current user, persists the merged
// record into the users collection by email and refreshes the session.
// A call without a current user is a no-op.
func (a *App) UpdateUser(ctx context.Context, update UserUpdate) {
	user := a.session.User()
	if user == nil {
		return
	}

	if update.FullName != nil {
		user.FullName = *update.FullName
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Addresses != nil {
		user.Addresses = *update.Addresses
	}
	if update.DailyEnhancements != nil {
		user.DailyEnhancements = *update.DailyEnhancements
	}

	a.users.Update(ctx, func(u models.User) bool { return u.Email == user.Email }, *user)
	a.session.setUser(ctx, user)
}

// AddAddress appends a new address with a generated id to the current
// user's address list.
func (a *App) AddAddress(ctx context.Context, alias, fullAddress string) {
	user := a.session.User()
	if user == nil {
		return
	}
	addresses := append(append([]models.Address(nil), user.Addresses...), models.Address{
		ID:          fmt.Sprintf("addr_%d", a.now().UnixMilli()),
		Alias:       alias,
		FullAddress: fullAddress,
	})
	a.UpdateUser(ctx, UserUpdate{Addresses: &addresses})
}

// UpdateAddress replaces the address with the matching id.
func (a *App) UpdateAddress(ctx context.Context, address models.Address) {
	user := a.session.User()
	if user == nil {
		return
	}
	addresses := append([]models.Address(nil), user.Addresses...)
	for i := range addresses {
		if addresses[i].ID == address.ID {
			addresses[i] = address
		}
	}
	a.UpdateUser(ctx, UserUpdate{Addresses: &addresses})
}

// DeleteAddress removes the address with the given id.
func (a *App) DeleteAddress(ctx context.Context, addressID string) {
	user := a.session.User()
	if user == nil {
		return
	}
	addresses := make([]models.Address, 0, len(user.Addresses))
	for _, addr := range user.Addresses {
		if addr.ID != addressID {
			addresses = append(addresses, addr)
		}
	}
	a.UpdateUser(ctx, UserUpdate{Addresses: &addresses})
}

// Cart returns the current cart lines.
func (a *App) Cart() []models.CartItem { return a.session.Cart() }

// AddToCart increments the quantity of an existing line with the same item
// id, or appends a new line with quantity 1.
func (a *App) AddToCart(ctx context.Context, item models.FoodItem) {
	cart := a.session.Cart()
	for i := range cart {
		if cart[i].ID == item.ID {
			cart[i].Quantity++
			a.session.setCart(ctx, cart)
			return
		}
	}
	a.session.setCart(ctx, append(cart, models.CartItem{FoodItem: item, Quantity: 1}))
}

// RemoveFromCart drops the line with the given item id.
func (a *App) RemoveFromCart(ctx context.Context, itemID int64) {
	cart := a.session.Cart()
	next := make([]models.CartItem, 0, len(cart))
	for _, line := range cart {
		if line.ID != itemID {
			next = append(next, line)
		}
	}
	a.session.setCart(ctx, next)
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less
// removes the line instead of storing a non-positive quantity.
func (a *App) UpdateQuantity(ctx context.Context, itemID int64, quantity int) {
	if quantity <= 0 {
		a.RemoveFromCart(ctx, itemID)
		return
	}
	cart := a.session.Cart()
	for i := range cart {
		if cart[i].ID == itemID {
			cart[i].Quantity = quantity
		}
	}
	a.session.setCart(ctx, cart)
}

// ClearCart empties the cart.
func (a *App) ClearCart(ctx context.Context) {
	a.session.setCart(ctx, []models.CartItem{})
}

// CheckAndIncrementEnhancementUsage consumes one unit of the daily photo
// enhancement quota. The counter resets to zero the first time it is
// checked on a calendar day different from the last reset, however many
// days have passed. Returns false without incrementing when the cap is
// already reached or nobody is logged in.
func (a *App) CheckAndIncrementEnhancementUsage(ctx context.Context) bool {
	user := a.session.User()
	if user == nil {
		return false
	}

	now := a.now()
	usage := user.DailyEnhancements
	last := time.UnixMilli(usage.LastReset)
	if now.Day() != last.Day() || now.Month() != last.Month() || now.Year() != last.Year() {
		usage = models.EnhancementUsage{Count: 0, LastReset: now.UnixMilli()}
	}

	if usage.Count >= dailyEnhancementLimit {
		return false
	}

	usage.Count++
	a.UpdateUser(ctx, UserUpdate{DailyEnhancements: &usage})
	return true
}

// SaveEnhancedImage appends a gallery record for the current user. A call
// without a current user is a no-op.
func (a *App) SaveEnhancedImage(ctx context.Context, originalImage, enhancedImage string) *models.EnhancedImage {
	user := a.session.User()
	if user == nil {
		return nil
	}
	record := models.EnhancedImage{
		ID:            fmt.Sprintf("img_%d", a.now().UnixMilli()),
		UserID:        user.Email,
		OriginalImage: originalImage,
		EnhancedImage: enhancedImage,
		CreatedAt:     a.now().UnixMilli(),
	}
	a.images.Append(ctx, record)
	return &record
}

// AllEnhancedImages lists the gallery in insertion order.
func (a *App) AllEnhancedImages(ctx context.Context) []models.EnhancedImage {
	return a.images.List(ctx)
}

// AllUsers lists every registered user, for the admin panel.
func (a *App) AllUsers(ctx context.Context) []models.User {
	return a.users.List(ctx)
}

// AllOrders lists every order, for the admin panel.
func (a *App) AllOrders(ctx context.Context) []models.Order {
	return a.orders.List(ctx)
}

// AdminSettings returns the stored settings or the documented defaults.
func (a *App) AdminSettings(ctx context.Context) models.AdminSettings {
	return a.settings.Get(ctx)
}

// SaveAdminSettings overwrites the settings record wholesale.
func (a *App) SaveAdminSettings(ctx context.Context, settings models.AdminSettings) {
	a.settings.Save(ctx, settings)
}

// DailyMenus returns the full weekly menu map.
func (a *App) DailyMenus(ctx context.Context) models.DailyMenus {
	return a.menus.All(ctx)
}

// UpdateDailyMenu replaces a single day's menu wholesale.
func (a *App) UpdateDailyMenu(ctx context.Context, day models.DayKey, items []models.FoodItem) error {
	return a.menus.ReplaceDay(ctx, day, items)
}

// TomorrowsMenu resolves tomorrow's weekday and returns its menu together
// with the customer-facing day name.
func (a *App) TomorrowsMenu(ctx context.Context) ([]models.FoodItem, string) {
	// time.Weekday numbers Sunday as 0, matching the rotation below.
	rotation := []models.DayKey{
		models.Sunday, models.Monday, models.Tuesday, models.Wednesday,
		models.Thursday, models.Friday, models.Saturday,
	}
	tomorrow := rotation[(int(a.now().Weekday())+1)%7]
	return a.menus.Day(ctx, tomorrow), models.PersianDayNames[tomorrow]
}
