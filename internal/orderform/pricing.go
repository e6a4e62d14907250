package orderform

import (
	"github.com/shopspring/decimal"

	"atelier-desk/internal/model"
)

// PrepaymentAmount is the fixed prepayment collected up front; the
// afterpayment auto-derives as cost minus this, floored at zero.
var PrepaymentAmount = decimal.NewFromInt(200)

// dimensions is a volumetric length/width/height triple in centimetres.
type dimensions struct {
	Length, Width, Height int
}

// seatDimensions maps each weight preset to its default parcel dimensions.
var seatDimensions = map[int]dimensions{
	2:  {33, 23, 10},
	4:  {40, 20, 20},
	10: {50, 50, 16},
}

// seatWeightPresets are the selectable weight presets, ascending.
var seatWeightPresets = []int{2, 4, 10}

// defaultSeat is the seat a brand-new order starts with.
func defaultSeat() Seat {
	d := seatDimensions[2]
	return Seat{Weight: 2, Length: d.Length, Width: d.Width, Height: d.Height}
}

// seedSeat builds the draft seat for an edited order: persisted seat record
// if present, preset defaults for the persisted weight otherwise.
func seedSeat(o *model.Order) Seat {
	if len(o.Seats) > 0 {
		s := o.Seats[0]
		return Seat{Weight: s.Weight, Length: s.Length, Width: s.Width, Height: s.Height}
	}
	weight := o.Weight
	if _, ok := seatDimensions[weight]; !ok {
		weight = 2
	}
	d := seatDimensions[weight]
	return Seat{Weight: weight, Length: d.Length, Width: d.Width, Height: d.Height}
}

// effectiveSaleTypeLocked is the pricing basis: the draft value while the
// order is being created, the persisted (immutable) value when editing.
func (f *Form) effectiveSaleTypeLocked() model.SaleType {
	if f.existing != nil {
		return f.existing.SaleType
	}
	return f.draft.SaleType
}

// unitPrice selects the product price column for the sale type.
func unitPrice(v *model.ProductVariant, st model.SaleType) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	switch st {
	case model.SaleDrop:
		return v.Product.DropPrice
	case model.SaleWholesale:
		return v.Product.WholesalePrice
	default:
		return v.Product.Price
	}
}

// autoCostLocked sums unitPrice × quantity over every line with a resolved
// variant snapshot and positive quantity, rounded to whole currency units.
func (f *Form) autoCostLocked() decimal.Decimal {
	st := f.effectiveSaleTypeLocked()
	total := decimal.Zero
	for _, it := range f.draft.Items {
		if it.Variant == nil || it.Quantity <= 0 {
			continue
		}
		total = total.Add(unitPrice(it.Variant, st).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total.Round(0)
}

// recalculateCostLocked writes the auto-derived cost through the system path,
// which never sets the manual-edit flag. A manual edit suppresses it unless
// the caller forces (sale-type change is a pricing-basis change and wins).
func (f *Form) recalculateCostLocked(force bool) {
	if !force && f.costManuallyEdited {
		return
	}
	f.draft.Cost = f.autoCostLocked()
}

// recalculateAfterpaymentLocked keeps the afterpayment tracking the cost
// while prepayment is on, under the same sticky-override rule.
func (f *Form) recalculateAfterpaymentLocked(force bool) {
	if !f.draft.IsPrepayment {
		return
	}
	if !force && f.afterpaymentManuallyEdited {
		return
	}
	v := f.draft.Cost.Sub(PrepaymentAmount)
	if v.IsNegative() {
		v = decimal.Zero
	}
	f.draft.Afterpayment = &v
}
