package orderform

import (
	"time"

	"atelier-desk/internal/model"
)

// Payer type and payment method are business defaults for now, not
// user-selected. Kept as constants until the feature lands.
const (
	defaultPayerType     = model.PayerRecipient
	defaultPaymentMethod = model.PaymentCash
)

// buildAddOrder maps a valid draft into the upstream create command. The
// address and warehouse branches are mutually exclusive: whichever is
// inactive stays nil, never a stale value.
func buildAddOrder(d *Draft, settings *model.UserSettings, sender model.ContactPerson) *model.AddOrder {
	cmd := &model.AddOrder{
		SenderWarehouseID: settings.Warehouse.ID,
		PayerType:         defaultPayerType,
		PaymentMethod:     defaultPaymentMethod,
		SaleType:          d.SaleType,
		SendUntilDate:     localNoon(d.SendUntil),
		Weight:            d.Seat.Weight,
		DeliveryType:      d.DeliveryType,
		SeatsAmount:       d.SeatsAmount,
		Description:       d.Description,
		Cost:              d.Cost,
		Items:             addItems(d.Items),
		Seats:             buildSeats(d),
		SenderCity:        *settings.City,
		SenderContact:     sender,
		Recipient:         buildRecipient(d),
	}
	if d.IsPrepayment && d.Afterpayment != nil {
		v := *d.Afterpayment
		cmd.Afterpayment = &v
	}
	applyAddDeliveryBranch(cmd, d)
	return cmd
}

// buildUpdateOrder maps a valid draft into the upstream update command. The
// persisted id and original sale type are preserved; an existing address
// record id is carried forward so the upstream updates rather than
// duplicates the sub-record.
func buildUpdateOrder(d *Draft, existing *model.Order, settings *model.UserSettings, sender model.ContactPerson) *model.UpdateOrder {
	cmd := &model.UpdateOrder{
		ID:                existing.ID,
		SenderWarehouseID: settings.Warehouse.ID,
		PayerType:         defaultPayerType,
		PaymentMethod:     defaultPaymentMethod,
		SaleType:          existing.SaleType,
		SendUntilDate:     localNoon(d.SendUntil),
		Weight:            d.Seat.Weight,
		DeliveryType:      d.DeliveryType,
		SeatsAmount:       d.SeatsAmount,
		Description:       d.Description,
		Cost:              d.Cost,
		Items:             updateItems(d.Items),
		Seats:             buildSeats(d),
		SenderCity:        *settings.City,
		SenderContact:     sender,
		Recipient:         buildRecipient(d),
	}
	if d.IsPrepayment && d.Afterpayment != nil {
		v := *d.Afterpayment
		cmd.Afterpayment = &v
	}

	switch d.DeliveryType {
	case model.DeliveryAddress:
		info := &model.UpdateOrderAddressInfo{
			AddOrderAddressInfo: addressPayload(d),
		}
		if existing.AddressInfo != nil {
			info.ID = existing.AddressInfo.ID
		}
		cmd.AddressInfo = info
	case model.DeliveryWarehouseOrPost:
		id := d.Warehouse.Warehouse.ID
		cmd.RecipientWarehouseID = &id
		city := *d.Warehouse.City
		cmd.RecipientCity = &city
	}
	return cmd
}

func applyAddDeliveryBranch(cmd *model.AddOrder, d *Draft) {
	switch d.DeliveryType {
	case model.DeliveryAddress:
		info := addressPayload(d)
		cmd.AddressInfo = &info
	case model.DeliveryWarehouseOrPost:
		id := d.Warehouse.Warehouse.ID
		cmd.RecipientWarehouseID = &id
		city := *d.Warehouse.City
		cmd.RecipientCity = &city
	}
}

func addressPayload(d *Draft) model.AddOrderAddressInfo {
	return model.AddOrderAddressInfo{
		Note:   d.Address.Note,
		City:   d.Address.City,
		Street: d.Address.Street,
		House:  d.Address.House,
		Flat:   d.Address.Flat,
	}
}

func buildRecipient(d *Draft) model.AddOrderRecipient {
	return model.AddOrderRecipient{
		InstagramHandle: d.Recipient.InstagramHandle,
		Contact: model.ContactPerson{
			LastName:   d.Recipient.LastName,
			FirstName:  d.Recipient.FirstName,
			MiddleName: d.Recipient.MiddleName,
			Phone:      d.Recipient.Phone,
		},
	}
}

func addItems(items []LineItem) []model.AddOrderItem {
	out := make([]model.AddOrderItem, len(items))
	for i, it := range items {
		out[i] = model.AddOrderItem{
			VariantID:         it.VariantID,
			IsCustomTailoring: it.IsCustomTailoring,
			Comment:           it.Comment,
			Quantity:          it.Quantity,
		}
	}
	return out
}

func updateItems(items []LineItem) []model.UpdateOrderItem {
	out := make([]model.UpdateOrderItem, len(items))
	for i, it := range items {
		out[i] = model.UpdateOrderItem{
			ID:                it.ItemID,
			VariantID:         it.VariantID,
			IsCustomTailoring: it.IsCustomTailoring,
			Comment:           it.Comment,
			Quantity:          it.Quantity,
		}
	}
	return out
}

func buildSeats(d *Draft) []model.ShipmentSeat {
	return []model.ShipmentSeat{{
		Weight: d.Seat.Weight,
		Length: d.Seat.Length,
		Width:  d.Seat.Width,
		Height: d.Seat.Height,
	}}
}

// localNoon pins the send-by date to local noon so serialization across
// timezone boundaries cannot shift the calendar day.
func localNoon(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}
