package orderform

import (
	"time"

	"github.com/shopspring/decimal"

	"atelier-desk/internal/model"
)

// SetDeliveryType switches between the two mutually exclusive delivery
// sub-models. Switching to address-based delivery clears the warehouse
// selection; switching back resets the address fields and, when editing,
// repopulates the warehouse selection from the persisted order. The
// transition itself never recomputes derived pricing.
func (f *Form) SetDeliveryType(dt model.DeliveryType) {
	if !dt.Valid() {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if dt == f.draft.DeliveryType {
		return
	}
	f.draft.DeliveryType = dt

	switch dt {
	case model.DeliveryAddress:
		f.draft.Warehouse = WarehouseSelection{}
	case model.DeliveryWarehouseOrPost:
		f.draft.Address = AddressFields{}
		if f.existing != nil {
			f.draft.Warehouse = WarehouseSelection{
				City:      f.existing.RecipientCity,
				Warehouse: f.existing.RecipientWarehouse,
			}
		}
	}
}

// PhoneInput feeds recipient phone keystrokes. Typing invalidates any prior
// confirmed selection and (debounced) triggers a contact lookup.
func (f *Form) PhoneInput(text string) {
	f.mu.Lock()
	f.draft.Recipient.Phone = text
	f.phoneConfirmed = false
	f.mu.Unlock()
	f.phoneAssist.Input(text)
}

// PhoneBlur commits the phone field. Text without a confirmed suggestion is
// cleared: free-text phones are never accepted. A lookup still pending from
// earlier keystrokes is cancelled so it cannot repopulate the suggestions.
func (f *Form) PhoneBlur() {
	f.mu.Lock()
	f.touched["phone"] = true
	if !f.phoneConfirmed && f.draft.Recipient.Phone != "" {
		f.draft.Recipient.Phone = ""
		f.phoneSuggestions = nil
	}
	f.mu.Unlock()
	f.phoneAssist.Input("")
}

// SelectPhoneSuggestion confirms one contact suggestion, populating the name
// fields and marking them touched so validation renders immediately.
func (f *Form) SelectPhoneSuggestion(c model.ContactPerson) {
	f.mu.Lock()
	f.draft.Recipient.Phone = c.Phone
	f.draft.Recipient.LastName = c.LastName
	f.draft.Recipient.FirstName = c.FirstName
	f.draft.Recipient.MiddleName = c.MiddleName
	f.phoneConfirmed = true
	f.phoneSuggestions = nil
	for _, field := range []string{"phone", "lastName", "firstName", "middleName"} {
		f.touched[field] = true
	}
	f.mu.Unlock()
	f.phoneAssist.Input("")
}

// SetLastName sets the recipient last name.
func (f *Form) SetLastName(v string) { f.setRecipientField("lastName", &f.draft.Recipient.LastName, v) }

// SetFirstName sets the recipient first name.
func (f *Form) SetFirstName(v string) {
	f.setRecipientField("firstName", &f.draft.Recipient.FirstName, v)
}

// SetMiddleName sets the recipient middle name. Whether it is required
// depends on the delivery type.
func (f *Form) SetMiddleName(v string) {
	f.setRecipientField("middleName", &f.draft.Recipient.MiddleName, v)
}

// SetInstagramHandle sets the recipient instagram handle.
func (f *Form) SetInstagramHandle(v string) {
	f.setRecipientField("instUrl", &f.draft.Recipient.InstagramHandle, v)
}

func (f *Form) setRecipientField(name string, dst *string, v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	*dst = v
	f.touched[name] = true
}

// SetAddressNote sets the optional address note.
func (f *Form) SetAddressNote(v string) { f.setAddressField("addressNote", &f.draft.Address.Note, v) }

// SetAddressCity sets the free-text address city.
func (f *Form) SetAddressCity(v string) { f.setAddressField("addressCity", &f.draft.Address.City, v) }

// SetAddressStreet sets the street name.
func (f *Form) SetAddressStreet(v string) {
	f.setAddressField("addressStreet", &f.draft.Address.Street, v)
}

// SetAddressHouse sets the house number.
func (f *Form) SetAddressHouse(v string) {
	f.setAddressField("addressHouse", &f.draft.Address.House, v)
}

// SetAddressFlat sets the flat number.
func (f *Form) SetAddressFlat(v string) { f.setAddressField("addressFlat", &f.draft.Address.Flat, v) }

func (f *Form) setAddressField(name string, dst *string, v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	*dst = v
	f.touched[name] = true
}

// SelectCity records a concrete carrier city picked from a lookup
// suggestion. Passing nil clears the selection (blur without a confirmed
// pick). Changing the city invalidates the selected warehouse.
func (f *Form) SelectCity(city *model.City) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched["warehouseCity"] = true
	prev := f.draft.Warehouse.City
	f.draft.Warehouse.City = city
	if city == nil || (prev != nil && prev.Ref != city.Ref) {
		f.draft.Warehouse.Warehouse = nil
	}
}

// SelectWarehouse records a concrete carrier warehouse. Passing nil clears it.
func (f *Form) SelectWarehouse(wh *model.Warehouse) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched["warehouse"] = true
	f.draft.Warehouse.Warehouse = wh
}

// ProductSearchInput feeds product search keystrokes into the variant lookup.
func (f *Form) ProductSearchInput(text string) {
	f.productAssist.Input(text)
}

// AddVariant appends a new line item for the selected variant and resets the
// product search. Duplicate variants are allowed: each line keeps its own
// comment and tailoring flag.
func (f *Form) AddVariant(v *model.ProductVariant) {
	if v == nil {
		return
	}
	f.mu.Lock()
	f.draft.Items = append(f.draft.Items, LineItem{
		VariantID: v.ID,
		Variant:   v,
		Quantity:  1,
	})
	f.variantSuggestions = nil
	f.recalculateCostLocked(false)
	f.recalculateAfterpaymentLocked(false)
	f.mu.Unlock()
	f.productAssist.Input("")
}

// RemoveItem deletes the line item at index i, preserving display order.
func (f *Form) RemoveItem(i int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i < 0 || i >= len(f.draft.Items) {
		return
	}
	f.draft.Items = append(f.draft.Items[:i], f.draft.Items[i+1:]...)
	f.recalculateCostLocked(false)
	f.recalculateAfterpaymentLocked(false)
}

// SetItemQuantity changes a line item quantity and recomputes derived pricing.
func (f *Form) SetItemQuantity(i, quantity int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i < 0 || i >= len(f.draft.Items) {
		return
	}
	f.draft.Items[i].Quantity = quantity
	f.recalculateCostLocked(false)
	f.recalculateAfterpaymentLocked(false)
}

// SetItemComment sets a line item comment.
func (f *Form) SetItemComment(i int, comment string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i < 0 || i >= len(f.draft.Items) {
		return
	}
	f.draft.Items[i].Comment = comment
}

// SetItemCustomTailoring flags a line item as custom tailoring.
func (f *Form) SetItemCustomTailoring(i int, custom bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i < 0 || i >= len(f.draft.Items) {
		return
	}
	f.draft.Items[i].IsCustomTailoring = custom
}

// SetSaleType changes the pricing basis. Sale type is locked once the order
// exists; when it does change, the new basis deliberately overrides a manual
// cost edit.
func (f *Form) SetSaleType(st model.SaleType) error {
	if !st.Valid() {
		return model.ErrFormInvalid
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existing != nil {
		return model.ErrSaleTypeLocked
	}
	if st == f.draft.SaleType {
		return nil
	}
	f.draft.SaleType = st
	f.recalculateCostLocked(true)
	f.recalculateAfterpaymentLocked(false)
	return nil
}

// SetCost is the direct user edit of the order cost. It sets the sticky
// manual-override flag for the rest of the session.
func (f *Form) SetCost(v decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched["cost"] = true
	f.draft.Cost = v
	f.costManuallyEdited = true
	f.recalculateAfterpaymentLocked(false)
}

// SetPrepayment toggles partial prepayment. Either direction clears the
// afterpayment manual-override flag: the semantic context changed.
func (f *Form) SetPrepayment(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if on == f.draft.IsPrepayment {
		return
	}
	f.draft.IsPrepayment = on
	f.afterpaymentManuallyEdited = false
	if !on {
		f.draft.Afterpayment = nil
		return
	}
	f.recalculateAfterpaymentLocked(true)
}

// SetAfterpayment is the direct user edit of the afterpayment amount.
func (f *Form) SetAfterpayment(v decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched["afterpayment"] = true
	f.draft.Afterpayment = &v
	f.afterpaymentManuallyEdited = true
}

// SetWeight changes the seat weight preset. Dimensions are always overwritten
// from the preset table: weight changes clobber prior dimension edits.
func (f *Form) SetWeight(weight int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Seat.Weight = weight
	if dims, ok := seatDimensions[weight]; ok {
		f.draft.Seat.Length = dims.Length
		f.draft.Seat.Width = dims.Width
		f.draft.Seat.Height = dims.Height
	}
}

// SetDimensions is the direct user edit of the seat dimensions.
func (f *Form) SetDimensions(length, width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Seat.Length = length
	f.draft.Seat.Width = width
	f.draft.Seat.Height = height
}

// SetSeatsAmount sets how many physical parcels the shipment has.
func (f *Form) SetSeatsAmount(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.SeatsAmount = n
}

// SetSendUntil sets the send-by date.
func (f *Form) SetSendUntil(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched["sendUntilDate"] = true
	f.draft.SendUntil = t
}

// SetDescription sets the parcel description.
func (f *Form) SetDescription(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Description = v
}
