package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"atelier-desk/internal/model"
	"atelier-desk/internal/orderform"
	"atelier-desk/internal/session"
)

// OrderFetcher loads a persisted order to seed an edit session.
type OrderFetcher interface {
	Get(ctx context.Context, id string) (*model.Order, error)
}

// FormHandler exposes order-form sessions over HTTP.
type FormHandler struct {
	registry *session.Registry
	orders   OrderFetcher
	deps     orderform.Deps
	cfg      *orderform.Config
	logger   zerolog.Logger
}

// NewFormHandler creates the form session handler.
func NewFormHandler(registry *session.Registry, orders OrderFetcher, deps orderform.Deps, cfg *orderform.Config, logger zerolog.Logger) *FormHandler {
	return &FormHandler{
		registry: registry,
		orders:   orders,
		deps:     deps,
		cfg:      cfg,
		logger:   logger.With().Str("handler", "order-form").Logger(),
	}
}

// openRequest opens a session: empty for creation, an order id for editing.
type openRequest struct {
	OrderID string `json:"orderId,omitempty"`
}

// openResponse returns the new session and its initial state.
type openResponse struct {
	SessionID string           `json:"sessionId"`
	State     *orderform.State `json:"state"`
}

// Open handles POST /api/order-forms.
func (h *FormHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
			return
		}
	}

	var existing *model.Order
	if req.OrderID != "" {
		order, err := h.orders.Get(r.Context(), req.OrderID)
		if err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		existing = order
	}

	form := orderform.New(h.cfg, h.deps, existing, h.logger)
	id := h.registry.Open(form)
	writeJSON(w, http.StatusCreated, openResponse{
		SessionID: id.String(),
		State:     form.State(),
	})
}

// State handles GET /api/order-forms/{id}.
func (h *FormHandler) State(w http.ResponseWriter, r *http.Request) {
	form, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, form.State())
}

// FormEvent is one field-change event applied to a session. Type selects the
// payload field that must be present.
type FormEvent struct {
	Type string `json:"type"`

	DeliveryType *model.DeliveryType   `json:"deliveryType,omitempty"`
	SaleType     *model.SaleType       `json:"saleType,omitempty"`
	Text         *string               `json:"text,omitempty"`
	Contact      *model.ContactPerson  `json:"contact,omitempty"`
	City         *model.City           `json:"city,omitempty"`
	Warehouse    *model.Warehouse      `json:"warehouse,omitempty"`
	Variant      *model.ProductVariant `json:"variant,omitempty"`
	Index        *int                  `json:"index,omitempty"`
	Quantity     *int                  `json:"quantity,omitempty"`
	Flag         *bool                 `json:"flag,omitempty"`
	Amount       *decimal.Decimal      `json:"amount,omitempty"`
	Length       *int                  `json:"length,omitempty"`
	Width        *int                  `json:"width,omitempty"`
	Height       *int                  `json:"height,omitempty"`
	Date         *time.Time            `json:"date,omitempty"`
}

// Apply handles POST /api/order-forms/{id}/events.
func (h *FormHandler) Apply(w http.ResponseWriter, r *http.Request) {
	form, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var ev FormEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if err := h.dispatch(form, &ev); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, form.State())
}

// dispatch routes one event to the matching form mutation.
func (h *FormHandler) dispatch(form *orderform.Form, ev *FormEvent) error {
	missing := model.NewDomainError(model.ErrCodeMissingField, "event payload missing for type "+ev.Type)

	switch ev.Type {
	case "deliveryType":
		if ev.DeliveryType == nil {
			return missing
		}
		form.SetDeliveryType(*ev.DeliveryType)
	case "phoneInput":
		if ev.Text == nil {
			return missing
		}
		form.PhoneInput(*ev.Text)
	case "phoneBlur":
		form.PhoneBlur()
	case "phoneSelect":
		if ev.Contact == nil {
			return missing
		}
		form.SelectPhoneSuggestion(*ev.Contact)
	case "lastName":
		if ev.Text == nil {
			return missing
		}
		form.SetLastName(*ev.Text)
	case "firstName":
		if ev.Text == nil {
			return missing
		}
		form.SetFirstName(*ev.Text)
	case "middleName":
		if ev.Text == nil {
			return missing
		}
		form.SetMiddleName(*ev.Text)
	case "instUrl":
		if ev.Text == nil {
			return missing
		}
		form.SetInstagramHandle(*ev.Text)
	case "addressNote":
		if ev.Text == nil {
			return missing
		}
		form.SetAddressNote(*ev.Text)
	case "addressCity":
		if ev.Text == nil {
			return missing
		}
		form.SetAddressCity(*ev.Text)
	case "addressStreet":
		if ev.Text == nil {
			return missing
		}
		form.SetAddressStreet(*ev.Text)
	case "addressHouse":
		if ev.Text == nil {
			return missing
		}
		form.SetAddressHouse(*ev.Text)
	case "addressFlat":
		if ev.Text == nil {
			return missing
		}
		form.SetAddressFlat(*ev.Text)
	case "citySelect":
		form.SelectCity(ev.City)
	case "warehouseSelect":
		form.SelectWarehouse(ev.Warehouse)
	case "productSearch":
		if ev.Text == nil {
			return missing
		}
		form.ProductSearchInput(*ev.Text)
	case "addVariant":
		if ev.Variant == nil {
			return missing
		}
		form.AddVariant(ev.Variant)
	case "removeItem":
		if ev.Index == nil {
			return missing
		}
		form.RemoveItem(*ev.Index)
	case "itemQuantity":
		if ev.Index == nil || ev.Quantity == nil {
			return missing
		}
		form.SetItemQuantity(*ev.Index, *ev.Quantity)
	case "itemComment":
		if ev.Index == nil || ev.Text == nil {
			return missing
		}
		form.SetItemComment(*ev.Index, *ev.Text)
	case "itemCustomTailoring":
		if ev.Index == nil || ev.Flag == nil {
			return missing
		}
		form.SetItemCustomTailoring(*ev.Index, *ev.Flag)
	case "saleType":
		if ev.SaleType == nil {
			return missing
		}
		return form.SetSaleType(*ev.SaleType)
	case "cost":
		if ev.Amount == nil {
			return missing
		}
		form.SetCost(*ev.Amount)
	case "prepayment":
		if ev.Flag == nil {
			return missing
		}
		form.SetPrepayment(*ev.Flag)
	case "afterpayment":
		if ev.Amount == nil {
			return missing
		}
		form.SetAfterpayment(*ev.Amount)
	case "weight":
		if ev.Quantity == nil {
			return missing
		}
		form.SetWeight(*ev.Quantity)
	case "dimensions":
		if ev.Length == nil || ev.Width == nil || ev.Height == nil {
			return missing
		}
		form.SetDimensions(*ev.Length, *ev.Width, *ev.Height)
	case "seatsAmount":
		if ev.Quantity == nil {
			return missing
		}
		form.SetSeatsAmount(*ev.Quantity)
	case "sendUntil":
		if ev.Date == nil {
			return missing
		}
		form.SetSendUntil(*ev.Date)
	case "description":
		if ev.Text == nil {
			return missing
		}
		form.SetDescription(*ev.Text)
	default:
		return model.NewDomainError(model.ErrCodeMissingField, "unknown event type "+ev.Type)
	}
	return nil
}

// Submit handles POST /api/order-forms/{id}/submit.
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, form, ok := h.lookupID(w, r)
	if !ok {
		return
	}
	outcome, err := form.Submit(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	// A successfully saved order ends the editing session.
	if outcome.OrderSaved {
		_ = h.registry.Close(id)
	}
	writeJSON(w, http.StatusOK, outcome)
}

// Close handles DELETE /api/order-forms/{id}.
func (h *FormHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "invalid session id", h.logger)
		return
	}
	if err := h.registry.Close(id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *FormHandler) lookup(w http.ResponseWriter, r *http.Request) (*orderform.Form, bool) {
	_, form, ok := h.lookupID(w, r)
	return form, ok
}

func (h *FormHandler) lookupID(w http.ResponseWriter, r *http.Request) (uuid.UUID, *orderform.Form, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "invalid session id", h.logger)
		return uuid.Nil, nil, false
	}
	form, err := h.registry.Get(id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return uuid.Nil, nil, false
	}
	return id, form, true
}
