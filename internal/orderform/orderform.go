// Package orderform implements the order editing session: the draft model,
// delivery-type-conditional validation, derived pricing with sticky manual
// overrides, debounced recipient/product lookups, and submission of the
// finished draft to the upstream order service.
package orderform

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"atelier-desk/internal/lookup"
	"atelier-desk/internal/model"
)

// CarrierDirectory searches the carrier contact directory.
type CarrierDirectory interface {
	// SearchContactPersons looks up contacts by phone prefix.
	SearchContactPersons(ctx context.Context, phone string) ([]model.ContactPerson, error)

	// SenderContactPersons returns the contacts registered for the sender.
	SenderContactPersons(ctx context.Context) ([]model.ContactPerson, error)
}

// Catalog searches product variants by product name fragment.
type Catalog interface {
	SearchVariants(ctx context.Context, name string) ([]model.ProductVariant, error)
}

// SettingsProvider returns the operator's carrier settings.
type SettingsProvider interface {
	Get(ctx context.Context) (*model.UserSettings, error)
}

// OrderSubmitter sends finished order commands upstream.
type OrderSubmitter interface {
	Add(ctx context.Context, cmd *model.AddOrder) (*model.OrderCreationResult, error)
	Update(ctx context.Context, cmd *model.UpdateOrder) (*model.OrderUpdateResult, error)
}

// Deps are the external collaborators of a form session.
type Deps struct {
	Carrier  CarrierDirectory
	Catalog  Catalog
	Settings SettingsProvider
	Orders   OrderSubmitter
}

// Config holds the form tuning knobs.
type Config struct {
	// Debounce is the lookup debounce interval.
	Debounce time.Duration

	// PhoneMinLength is the shortest phone input that triggers a search.
	PhoneMinLength int

	// ProductMinLength is the shortest product input that triggers a search.
	ProductMinLength int
}

// DefaultConfig returns the production form configuration.
func DefaultConfig() *Config {
	return &Config{
		Debounce:         300 * time.Millisecond,
		PhoneMinLength:   6,
		ProductMinLength: 2,
	}
}

// Form is one order editing session. All state is mutated on field-change
// events under a single lock; lookups run on their own timers and re-enter
// through the same lock, so there is no shared mutable state outside it.
type Form struct {
	cfg    Config
	deps   Deps
	logger zerolog.Logger

	mu       sync.Mutex
	existing *model.Order // nil when creating
	draft    Draft

	costManuallyEdited         bool
	afterpaymentManuallyEdited bool
	phoneConfirmed             bool
	touched                    map[string]bool

	phoneSuggestions   []model.ContactPerson
	variantSuggestions []model.ProductVariant

	phoneAssist   *lookup.Assistant[model.ContactPerson]
	productAssist *lookup.Assistant[model.ProductVariant]

	submitting bool
	closed     bool
}

// New opens a form session. existing is nil for order creation; for edits the
// draft is seeded from the persisted order.
func New(cfg *Config, deps Deps, existing *model.Order, logger zerolog.Logger) *Form {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	f := &Form{
		cfg:      *cfg,
		deps:     deps,
		logger:   logger.With().Str("component", "order-form").Logger(),
		existing: existing,
		touched:  map[string]bool{},
	}
	f.seed()

	f.phoneAssist = lookup.NewAssistant(
		lookup.Config{MinLength: cfg.PhoneMinLength, Debounce: cfg.Debounce},
		deps.Carrier.SearchContactPersons,
		f.applyPhoneSuggestions,
		logger,
	)
	f.productAssist = lookup.NewAssistant(
		lookup.Config{MinLength: cfg.ProductMinLength, Debounce: cfg.Debounce},
		deps.Catalog.SearchVariants,
		f.applyVariantSuggestions,
		logger,
	)
	return f
}

// Close tears the session down. Every outstanding lookup is cancelled so no
// stale callback can mutate a disposed form.
func (f *Form) Close() {
	f.phoneAssist.Close()
	f.productAssist.Close()
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}

// Editing reports whether the session edits a persisted order.
func (f *Form) Editing() bool {
	return f.existing != nil
}

// seed builds the initial draft: defaults for creation, the persisted order
// for edits.
func (f *Form) seed() {
	if f.existing == nil {
		f.draft = Draft{
			DeliveryType: model.DeliveryWarehouseOrPost,
			SaleType:     model.SaleRetail,
			Cost:         decimal.Zero,
			Seat:         defaultSeat(),
			SeatsAmount:  1,
			SendUntil:    time.Now(),
			Description:  DefaultDescription,
		}
		return
	}

	o := f.existing
	d := Draft{
		DeliveryType: o.DeliveryType,
		Recipient: Recipient{
			LastName:        o.Recipient.Contact.LastName,
			FirstName:       o.Recipient.Contact.FirstName,
			MiddleName:      o.Recipient.Contact.MiddleName,
			Phone:           o.Recipient.Contact.Phone,
			InstagramHandle: o.Recipient.InstagramHandle,
		},
		SaleType:     o.SaleType,
		Cost:         o.Cost,
		IsPrepayment: o.Afterpayment != nil,
		SeatsAmount:  o.SeatsAmount,
		SendUntil:    o.SendUntilDate,
		Description:  o.Description,
	}
	if o.Afterpayment != nil {
		v := *o.Afterpayment
		d.Afterpayment = &v
	}
	if o.AddressInfo != nil {
		d.Address = AddressFields{
			Note:   o.AddressInfo.Note,
			City:   o.AddressInfo.City,
			Street: o.AddressInfo.Street,
			House:  o.AddressInfo.House,
			Flat:   o.AddressInfo.Flat,
		}
	}
	d.Warehouse = WarehouseSelection{
		City:      o.RecipientCity,
		Warehouse: o.RecipientWarehouse,
	}
	d.Seat = seedSeat(o)
	for _, it := range o.Items {
		d.Items = append(d.Items, LineItem{
			ItemID:            it.ID,
			VariantID:         it.VariantID,
			Variant:           it.Variant,
			IsCustomTailoring: it.IsCustomTailoring,
			Comment:           it.Comment,
			Quantity:          it.Quantity,
		})
	}
	f.draft = d
	// The phone on a persisted order came from a confirmed selection.
	f.phoneConfirmed = d.Recipient.Phone != ""
}

// State is a read-only snapshot of the session for rendering.
type State struct {
	Editing            bool                   `json:"editing"`
	Draft              Draft                  `json:"draft"`
	FieldErrors        FieldErrors            `json:"fieldErrors"`
	Touched            []string               `json:"touched"`
	PhoneConfirmed     bool                   `json:"phoneConfirmed"`
	PhoneSuggestions   []model.ContactPerson  `json:"phoneSuggestions"`
	VariantSuggestions []model.ProductVariant `json:"variantSuggestions"`
	Submitting         bool                   `json:"submitting"`
}

// State snapshots the current session.
func (f *Form) State() *State {
	f.mu.Lock()
	defer f.mu.Unlock()

	touched := make([]string, 0, len(f.touched))
	for k := range f.touched {
		touched = append(touched, k)
	}
	return &State{
		Editing:            f.existing != nil,
		Draft:              f.draft.clone(),
		FieldErrors:        f.validateLocked(),
		Touched:            touched,
		PhoneConfirmed:     f.phoneConfirmed,
		PhoneSuggestions:   append([]model.ContactPerson(nil), f.phoneSuggestions...),
		VariantSuggestions: append([]model.ProductVariant(nil), f.variantSuggestions...),
		Submitting:         f.submitting,
	}
}

func (f *Form) applyPhoneSuggestions(query string, results []model.ContactPerson) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.phoneSuggestions = results
}

func (f *Form) applyVariantSuggestions(query string, results []model.ProductVariant) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.variantSuggestions = results
}
