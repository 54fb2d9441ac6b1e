package api

import (
	"github.com/go-playground/validator/v10"

	"github.com/fitfood-app/backend/internal/models"
)

// LoginRequest authenticates or registers a customer.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginRequest opens an admin session.
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// ProfileUpdateRequest merges profile fields; absent fields are untouched.
type ProfileUpdateRequest struct {
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
}

// AddressRequest creates or updates a saved address.
type AddressRequest struct {
	Alias       string `json:"alias" binding:"required"`
	FullAddress string `json:"fullAddress" binding:"required"`
}

// CartAddRequest puts a dish in the cart.
type CartAddRequest struct {
	Item models.FoodItem `json:"item" binding:"required"`
}

// CartQuantityRequest sets the quantity of a cart line.
type CartQuantityRequest struct {
	ItemID   int64 `json:"itemId" binding:"required"`
	Quantity int   `json:"quantity"`
}

// OrderRequest carries the checkout choices. Items come from the cart.
type OrderRequest struct {
	Drinks         []models.OrderDrink   `json:"drinks"`
	PaymentMethod  models.PaymentMethod  `json:"paymentMethod" binding:"required,payment_method"`
	DeliveryMethod models.DeliveryMethod `json:"deliveryMethod" binding:"required,delivery_method"`
	Address        string                `json:"address"`
	DeliveryTime   string                `json:"deliveryTime" binding:"required"`
	ReceiptImage   string                `json:"receiptImage"`
}

// MenuUpdateRequest replaces one day's menu wholesale.
type MenuUpdateRequest struct {
	Items []models.FoodItem `json:"items" binding:"required"`
}

// PlanRequest is the questionnaire for diet and exercise plan generation.
type PlanRequest struct {
	Age                 int    `json:"age" binding:"required,gt=0,lt=120"`
	Gender              string `json:"gender" binding:"required"`
	Weight              int    `json:"weight" binding:"required,gt=0"`
	Height              int    `json:"height" binding:"required,gt=0"`
	ActivityLevel       string `json:"activityLevel" binding:"required"`
	Goal                string `json:"goal" binding:"required"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
	VulnerableBodyParts string `json:"vulnerableBodyParts"`
}

// EnhanceRequest carries a base64-encoded JPEG to reimagine.
type EnhanceRequest struct {
	Image string `json:"image" binding:"required,base64"`
}

// RegisterValidations adds the domain enum checks used in binding tags.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		switch models.PaymentMethod(fl.Field().String()) {
		case models.PaymentGateway, models.PaymentCardToCard, models.PaymentCashOnDelivery:
			return true
		}
		return false
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("delivery_method", func(fl validator.FieldLevel) bool {
		switch models.DeliveryMethod(fl.Field().String()) {
		case models.DeliveryCourier, models.DeliveryPickup:
			return true
		}
		return false
	}); err != nil {
		return err
	}
	return v.RegisterValidation("day_key", func(fl validator.FieldLevel) bool {
		return models.DayKey(fl.Field().String()).Valid()
	})
}
