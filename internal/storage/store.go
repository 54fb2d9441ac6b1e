// Package storage provides the persistent key-value boundary of the
// application. Every value is a JSON document under a fixed key; a missing
// or unreadable key is never an error for callers, they simply keep their
// default. Writes are fire-and-forget: a failed write is logged and
// swallowed, so callers must not assume durability.
package storage

import "context"

// Storage keys. Absence of a key means "use the documented default".
const (
	KeyCurrentUser    = "fitfood_user"
	KeyAdminFlag      = "fitfood_isAdmin"
	KeyCart           = "fitfood_cart"
	KeyDailyMenus     = "fitfood_daily_menus"
	KeyUsers          = "fitfood_users"
	KeyOrders         = "fitfood_orders"
	KeyAdminSettings  = "fitfood_admin_settings"
	KeyEnhancedImages = "fitfood_enhanced_images"
)

// Store is the key-value persistence contract.
type Store interface {
	// Read unmarshals the JSON document at key into dest and reports
	// whether a usable value was found. On absence, read failure or
	// malformed JSON it logs, leaves dest untouched and returns false.
	Read(ctx context.Context, key string, dest any) bool

	// Write marshals value to JSON and persists it at key. Failures are
	// logged and swallowed.
	Write(ctx context.Context, key string, value any)
}
