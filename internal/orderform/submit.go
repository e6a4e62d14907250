package orderform

import (
	"context"
	"fmt"

	"atelier-desk/internal/model"
)

// Outcome reports the two independent results of a submission: whether the
// order record saved and whether the carrier shipping document was created or
// updated. A failed document is a warning, not a failed submission.
type Outcome struct {
	OrderID       string `json:"orderId"`
	OrderSaved    bool   `json:"orderSaved"`
	ShippingDocOK bool   `json:"shippingDocOk"`
	Warning       string `json:"warning,omitempty"`
}

// Submit validates the draft, assembles the create or update command and
// sends it upstream. The settings → sender contact → submit chain is strictly
// sequential; at most one submission runs at a time, and the in-flight guard
// is released on every path.
func (f *Form) Submit(ctx context.Context) (*Outcome, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return nil, model.ErrSubmitInProgress
	}
	f.submitting = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	f.mu.Lock()
	if errs := f.validateLocked(); len(errs) > 0 {
		f.mu.Unlock()
		f.logger.Debug().Int("field_errors", len(errs)).Msg("submission blocked by validation")
		return nil, model.ErrFormInvalid
	}
	if len(f.draft.Items) == 0 {
		f.mu.Unlock()
		return nil, model.ErrEmptyOrder
	}
	if f.draft.DeliveryType == model.DeliveryWarehouseOrPost &&
		(f.draft.Warehouse.City == nil || f.draft.Warehouse.Warehouse == nil) {
		f.mu.Unlock()
		return nil, model.ErrWarehouseNotSelected
	}
	for _, it := range f.draft.Items {
		if it.Variant != nil && it.Variant.Status == model.ProductDiscontinued {
			f.mu.Unlock()
			f.logger.Warn().Str("variant_id", it.VariantID).Msg("submission blocked: discontinued variant")
			return nil, model.ErrDiscontinuedItem
		}
	}
	draft := f.draft.clone()
	existing := f.existing
	f.mu.Unlock()

	settings, err := f.deps.Settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sender settings: %w", err)
	}
	if !settings.Complete() {
		return nil, model.ErrSenderSettingsIncomplete
	}

	contacts, err := f.deps.Carrier.SenderContactPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sender contacts: %w", err)
	}
	if len(contacts) == 0 {
		return nil, model.ErrNoSenderContact
	}
	sender := contacts[0]

	if existing == nil {
		cmd := buildAddOrder(&draft, settings, sender)
		res, err := f.deps.Orders.Add(ctx, cmd)
		if err != nil {
			return nil, fmt.Errorf("failed to create order: %w", err)
		}
		out := &Outcome{
			OrderID:       res.OrderID,
			OrderSaved:    res.OrderSaved,
			ShippingDocOK: res.ShippingDocCreated,
		}
		if res.OrderSaved && !res.ShippingDocCreated {
			out.Warning = "shipping_doc_failed"
		}
		f.logger.Info().
			Str("order_id", res.OrderID).
			Bool("shipping_doc_created", res.ShippingDocCreated).
			Msg("order created")
		return out, nil
	}

	cmd := buildUpdateOrder(&draft, existing, settings, sender)
	res, err := f.deps.Orders.Update(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	out := &Outcome{
		OrderID:       existing.ID,
		OrderSaved:    res.OrderSaved,
		ShippingDocOK: res.ShippingDocUpdated,
	}
	if res.OrderSaved && !res.ShippingDocUpdated {
		out.Warning = "shipping_doc_failed"
	}
	f.logger.Info().
		Str("order_id", existing.ID).
		Bool("shipping_doc_updated", res.ShippingDocUpdated).
		Msg("order updated")
	return out, nil
}
