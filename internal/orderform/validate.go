package orderform

import (
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"atelier-desk/internal/model"
)

// FieldErrors maps field names to validation error keys. Keys are rendered
// as localized messages by the UI.
type FieldErrors map[string]string

// Validation error keys.
const (
	errRequired        = "required"
	errPattern         = "pattern"
	errMin             = "min"
	errInvalidQuantity = "invalid_quantity"
	errDateInPast      = "date_in_past"
	errUnknownPreset   = "unknown_preset"
)

// phonePattern accepts full Ukrainian mobile numbers only.
var phonePattern = regexp.MustCompile(`^380\d{9}$`)

var minCost = decimal.NewFromInt(1)

// Validate runs the full conditional validation pass. Required-ness of the
// address and warehouse groups is governed by the delivery type: exactly one
// of the two is active. Validation is silent state inspection; it never
// triggers derived-value recomputation.
func (f *Form) Validate() FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked()
}

func (f *Form) validateLocked() FieldErrors {
	d := &f.draft
	errs := FieldErrors{}

	switch d.Recipient.Phone {
	case "":
		errs["phone"] = errRequired
	default:
		if !phonePattern.MatchString(d.Recipient.Phone) {
			errs["phone"] = errPattern
		}
	}
	if d.Recipient.LastName == "" {
		errs["lastName"] = errRequired
	}
	if d.Recipient.FirstName == "" {
		errs["firstName"] = errRequired
	}
	if d.Recipient.InstagramHandle == "" {
		errs["instUrl"] = errRequired
	}

	switch d.DeliveryType {
	case model.DeliveryAddress:
		// Middle name is required only for door delivery.
		if d.Recipient.MiddleName == "" {
			errs["middleName"] = errRequired
		}
		if d.Address.City == "" {
			errs["addressCity"] = errRequired
		}
		if d.Address.Street == "" {
			errs["addressStreet"] = errRequired
		}
		if d.Address.House == "" {
			errs["addressHouse"] = errRequired
		}
		if d.Address.Flat == "" {
			errs["addressFlat"] = errRequired
		}
	case model.DeliveryWarehouseOrPost:
		if d.Warehouse.City == nil {
			errs["warehouseCity"] = errRequired
		}
		if d.Warehouse.Warehouse == nil {
			errs["warehouse"] = errRequired
		}
	}

	if d.Cost.LessThan(minCost) {
		errs["cost"] = errMin
	}
	if d.IsPrepayment {
		if d.Afterpayment == nil {
			errs["afterpayment"] = errRequired
		} else if d.Afterpayment.LessThan(minCost) {
			errs["afterpayment"] = errMin
		}
	}

	for i, it := range d.Items {
		if it.VariantID == "" {
			errs[itemField(i, "productVariantId")] = errRequired
		}
		if it.Quantity < 1 {
			errs[itemField(i, "quantity")] = errInvalidQuantity
		}
	}

	if _, ok := seatDimensions[d.Seat.Weight]; !ok {
		errs["weight"] = errUnknownPreset
	}
	if d.SeatsAmount < 1 {
		errs["seatsAmount"] = errMin
	}

	if d.SendUntil.IsZero() {
		errs["sendUntilDate"] = errRequired
	} else if dateBefore(d.SendUntil, time.Now()) {
		errs["sendUntilDate"] = errDateInPast
	}

	return errs
}

func itemField(i int, name string) string {
	return "items." + strconv.Itoa(i) + "." + name
}

// dateBefore compares calendar days in local time, ignoring time of day.
func dateBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
