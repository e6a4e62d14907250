package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier-desk/internal/client"
	"atelier-desk/internal/model"
)

// newProxyServer stands up the pass-through handlers in front of a fake
// upstream back-office API.
func newProxyServer(t *testing.T, upstream http.HandlerFunc) *httptest.Server {
	t.Helper()
	upstreamServer := httptest.NewServer(upstream)
	t.Cleanup(upstreamServer.Close)

	shared := client.New(upstreamServer.URL, "", time.Second, zerolog.Nop())
	orders := NewOrdersHandler(client.NewOrdersClient(shared), zerolog.Nop())
	carrier := NewCarrierHandler(client.NewCarrierClient(shared), zerolog.Nop())
	catalog := NewCatalogHandler(client.NewCatalogClient(shared), zerolog.Nop())
	settings := NewSettingsHandler(client.NewSettingsClient(shared), zerolog.Nop())
	inventory := NewInventoryHandler(client.NewInventoryClient(shared), zerolog.Nop())
	production := NewProductionHandler(client.NewProductionClient(shared), zerolog.Nop())

	r := chi.NewRouter()
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", orders.List)
		r.Get("/manual-status/next", orders.NextManualStatuses)
		r.Post("/manual-status", orders.SetManualStatus)
		r.Get("/{id}", orders.Get)
	})
	r.Route("/product-variants", func(r chi.Router) {
		r.Get("/", catalog.SearchVariants)
		r.Post("/", inventory.AddVariant)
		r.Put("/", inventory.UpdateVariant)
	})
	r.Get("/categories", inventory.ListCategories)
	r.Route("/colors", func(r chi.Router) {
		r.Get("/", inventory.ListColors)
		r.Post("/", inventory.AddColor)
		r.Put("/", inventory.UpdateColor)
	})
	r.Route("/sizes", func(r chi.Router) {
		r.Get("/", inventory.ListSizes)
		r.Post("/", inventory.AddSize)
	})
	r.Get("/measurement-types", inventory.ListMeasurementTypes)
	r.Route("/products", func(r chi.Router) {
		r.Get("/", inventory.ListProducts)
		r.Post("/", inventory.AddProduct)
		r.Put("/", inventory.UpdateProduct)
	})
	r.Route("/product-photos", func(r chi.Router) {
		r.Get("/", inventory.ListPhotos)
		r.Post("/", inventory.AddPhoto)
		r.Delete("/{id}", inventory.DeletePhoto)
	})
	r.Route("/sewing-queue", func(r chi.Router) {
		r.Get("/", production.SewingQueue)
		r.Post("/reports", production.SubmitSewedReport)
	})
	r.Route("/carrier", func(r chi.Router) {
		r.Get("/cities", carrier.SearchCities)
		r.Get("/warehouses", carrier.SearchWarehouses)
		r.Get("/sender/contacts", carrier.SenderContacts)
		r.Get("/sync/status", carrier.SyncStatus)
		r.Post("/sync/trigger", carrier.TriggerSync)
		r.Get("/sync/history", carrier.SyncHistory)
	})
	r.Route("/user-settings", func(r chi.Router) {
		r.Get("/", settings.Get)
		r.Post("/", settings.Create)
		r.Put("/", settings.Update)
		r.Delete("/{id}", settings.Delete)
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	payload, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(payload)
}

func TestOrdersHandler_List(t *testing.T) {
	server := newProxyServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "сукня", r.URL.Query().Get("search"))
		json.NewEncoder(w).Encode(model.OrderListResponse{
			Orders:        []model.Order{{ID: "order-1"}},
			ResultsAmount: 1,
		})
	})

	resp, err := http.Get(server.URL + "/orders?search=" + "%D1%81%D1%83%D0%BA%D0%BD%D1%8F")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out model.OrderListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 1, out.ResultsAmount)
}

func TestOrdersHandler_NextManualStatusesRequiresCurrent(t *testing.T) {
	server := newProxyServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called")
	})

	resp, err := http.Get(server.URL + "/orders/manual-status/next")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOrdersHandler_UpstreamFailureIsInternalError(t *testing.T) {
	server := newProxyServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	resp, err := http.Get(server.URL + "/orders/order-1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var out model.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, model.ErrCodeInternalError, out.Error)
}

func TestCatalogHandler_UnfilteredListingPassesThrough(t *testing.T) {
	server := newProxyServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("productName"))
		json.NewEncoder(w).Encode(model.VariantSearchResponse{
			Variants:      []model.ProductVariant{{ID: "variant-1"}, {ID: "variant-2"}},
			ResultsAmount: 2,
		})
	})

	resp, err := http.Get(server.URL + "/product-variants")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out model.VariantSearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Len(t, out.Variants, 2)
}

func TestCatalogHandler_ForwardsCategoryAndStatusFilters(t *testing.T) {
	server := newProxyServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "category-1", r.URL.Query().Get("categoryId"))
		assert.Equal(t, "0", r.URL.Query().Get("productStatus"))
		json.NewEncoder(w).Encode(model.VariantSearchResponse{})
	})

	resp, err := http.Get(server.URL + "/product-variants?categoryId=category-1&productStatus=0")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCatalogHandler_RejectsMalformedStatusFilter(t *testing.T) {
	server := newProxyServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called")
	})

	resp, err := http.Get(server.URL + "/product-variants?productStatus=active")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var out model.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, model.ErrCodeMissingField, out.Error)
}

func TestCatalogHandler_Search(t *testing.T) {
	server := newProxyServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "shirt", r.URL.Query().Get("productName"))
		json.NewEncoder(w).Encode(model.VariantSearchResponse{
			Variants:      []model.ProductVariant{{ID: "variant-1"}},
			ResultsAmount: 1,
		})
	})

	resp, err := http.Get(server.URL + "/product-variants?productName=shirt")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out model.VariantSearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Variants, 1)
	assert.Equal(t, "variant-1", out.Variants[0].ID)
}

func TestCarrierHandler_SearchCitiesRequiresName(t *testing.T) {
	server := newProxyServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called")
	})

	resp, err := http.Get(server.URL + "/carrier/cities")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCarrierHandler_SearchWarehouses(t *testing.T) {
	server := newProxyServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "city-ref-1", r.URL.Query().Get("cityRef"))
		json.NewEncoder(w).Encode([]model.Warehouse{{ID: "wh-1", Number: 12}})
	})

	resp, err := http.Get(server.URL + "/carrier/warehouses?cityRef=city-ref-1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out []model.Warehouse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, 12, out[0].Number)
}

func TestCarrierHandler_TriggerSync(t *testing.T) {
	var method string
	server := newProxyServer(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.WriteHeader(http.StatusOK)
	})

	resp, err := http.Post(server.URL+"/carrier/sync/trigger", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, http.MethodPost, method)
}

func TestCarrierHandler_SyncHistoryRejectsInvalidLimit(t *testing.T) {
	server := newProxyServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called")
	})

	resp, err := http.Get(server.URL + "/carrier/sync/history?limit=0")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSettingsHandler_UpdateRequiresID(t *testing.T) {
	server := newProxyServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called")
	})

	req, err := http.NewRequest(http.MethodPut, server.URL+"/user-settings", jsonBody(t, model.UpdateUserSettings{}))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSettingsHandler_Get(t *testing.T) {
	server := newProxyServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.UserSettings{
			ID:        "settings-1",
			City:      &model.City{Ref: "city-ref-1"},
			Warehouse: &model.Warehouse{ID: "wh-1"},
		})
	})

	resp, err := http.Get(server.URL + "/user-settings")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out model.UserSettings
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "settings-1", out.ID)
	assert.True(t, out.Complete())
}
