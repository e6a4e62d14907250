package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier-desk/internal/model"
)

// newTestClient wires the shared transport to an httptest server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, "test-api-key", time.Second, zerolog.Nop())
}

func TestClient_SetsHeaders(t *testing.T) {
	var gotAPIKey, gotAccept, gotContentType string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("X-API-Key")
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		json.NewEncoder(w).Encode(true)
	})

	var out bool
	require.NoError(t, c.post(context.Background(), "/anything", map[string]string{"a": "b"}, &out))

	assert.Equal(t, "test-api-key", gotAPIKey)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "application/json", gotContentType)
}

func TestClient_TrimsBaseURLSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("{}"))
	}))
	t.Cleanup(server.Close)

	c := New(server.URL+"/", "", time.Second, zerolog.Nop())
	var out map[string]any
	require.NoError(t, c.get(context.Background(), "/orders", nil, &out))

	assert.Equal(t, "/orders", gotPath)
}

func TestClient_ErrorStatusBecomesAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "order not found", http.StatusNotFound)
	})

	err := c.get(context.Background(), "/orders/missing", nil, &model.Order{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "order not found", apiErr.Body)
}

func TestClient_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	err := c.get(ctx, "/slow", nil, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCarrierClient_SearchCities(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/carrier/cities/search", r.URL.Path)
		assert.Equal(t, "Киї", r.URL.Query().Get("cityName"))
		json.NewEncoder(w).Encode(map[string]any{
			"cities": []model.City{{Ref: "city-ref-1", Name: "Київ"}},
		})
	})

	cities, err := NewCarrierClient(c).SearchCities(context.Background(), "Киї")

	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "city-ref-1", cities[0].Ref)
	assert.Equal(t, "Київ", cities[0].Name)
}

func TestCarrierClient_SearchContactPersons(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/carrier/contact-persons", r.URL.Path)
		assert.Equal(t, "380501", r.URL.Query().Get("phone"))
		json.NewEncoder(w).Encode([]model.ContactPerson{
			{Ref: "ref-1", LastName: "Шевченко", Phone: "380501234567"},
		})
	})

	contacts, err := NewCarrierClient(c).SearchContactPersons(context.Background(), "380501")

	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "380501234567", contacts[0].Phone)
}

func TestCarrierClient_SyncHistory(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/carrier/sync/history", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode(model.SyncHistoryResponse{
			Records: []model.SyncRecord{{ID: "sync-1", Status: model.SyncCompleted}},
		})
	})

	records, err := NewCarrierClient(c).SyncHistory(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "sync-1", records[0].ID)
}

func TestOrdersClient_List(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "сукня", r.URL.Query().Get("search"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "40", r.URL.Query().Get("offset"))
		json.NewEncoder(w).Encode(model.OrderListResponse{
			Orders:        []model.Order{{ID: "order-1"}},
			ResultsAmount: 101,
		})
	})

	resp, err := NewOrdersClient(c).List(context.Background(), model.OrderListRequest{
		Search: "сукня",
		Limit:  20,
		Offset: 40,
	})

	require.NoError(t, err)
	assert.Equal(t, 101, resp.ResultsAmount)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "order-1", resp.Orders[0].ID)
}

func TestOrdersClient_Add(t *testing.T) {
	var captured model.AddOrder
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(model.OrderCreationResult{
			OrderID:            "order-1",
			OrderSaved:         true,
			ShippingDocCreated: false,
			ShippingDocError:   "carrier rejected seats",
		})
	})

	cmd := &model.AddOrder{
		SenderWarehouseID: "wh-1",
		SaleType:          model.SaleRetail,
		Description:       "Одяг",
	}
	res, err := NewOrdersClient(c).Add(context.Background(), cmd)

	require.NoError(t, err)
	assert.True(t, res.OrderSaved)
	assert.False(t, res.ShippingDocCreated)
	assert.Equal(t, "carrier rejected seats", res.ShippingDocError)
	assert.Equal(t, "wh-1", captured.SenderWarehouseID)
	assert.Equal(t, "Одяг", captured.Description)
}

func TestOrdersClient_Get(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/order-1", r.URL.Path)
		json.NewEncoder(w).Encode(model.Order{ID: "order-1", Description: "Одяг"})
	})

	order, err := NewOrdersClient(c).Get(context.Background(), "order-1")

	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
}

func TestCatalogClient_Search(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product-variants", r.URL.Path)
		assert.Equal(t, "shirt", r.URL.Query().Get("productName"))
		json.NewEncoder(w).Encode(model.VariantSearchResponse{
			Variants:      []model.ProductVariant{{ID: "variant-1"}},
			ResultsAmount: 1,
		})
	})

	variants, err := NewCatalogClient(c).SearchVariants(context.Background(), "shirt")

	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Equal(t, "variant-1", variants[0].ID)
}

func TestSettingsClient_RoundTrip(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(model.UserSettings{
				ID:   "settings-1",
				City: &model.City{Ref: "city-ref-1"},
			})
		case r.Method == http.MethodPut:
			var cmd model.UpdateUserSettings
			require.NoError(t, json.NewDecoder(r.Body).Decode(&cmd))
			assert.Equal(t, "settings-1", cmd.ID)
			json.NewEncoder(w).Encode(true)
		case r.Method == http.MethodDelete:
			assert.Equal(t, "/user-settings/settings-1", r.URL.Path)
			json.NewEncoder(w).Encode(true)
		}
	})
	settings := NewSettingsClient(c)

	got, err := settings.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "settings-1", got.ID)

	ok, err := settings.Update(context.Background(), model.UpdateUserSettings{
		ID:        "settings-1",
		City:      model.City{Ref: "city-ref-2"},
		Warehouse: model.Warehouse{ID: "wh-2"},
	})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = settings.Delete(context.Background(), "settings-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCatalogClient_ListForwardsFilters(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "category-1", r.URL.Query().Get("categoryId"))
		assert.Equal(t, "2", r.URL.Query().Get("productStatus"))
		assert.Empty(t, r.URL.Query().Get("productName"))
		json.NewEncoder(w).Encode(model.VariantSearchResponse{})
	})

	status := model.ProductDiscontinued
	_, err := NewCatalogClient(c).List(context.Background(), model.VariantListRequest{
		CategoryID: "category-1",
		Status:     &status,
	})

	require.NoError(t, err)
}

func TestInventoryClient_Dictionaries(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/categories":
			json.NewEncoder(w).Encode(model.CategoryListResponse{
				Categories: []model.Category{{ID: "category-1"}}, ResultsAmount: 1,
			})
		case "/colors":
			json.NewEncoder(w).Encode(model.ColorListResponse{
				Colors: []model.Color{{ID: "color-1"}}, ResultsAmount: 1,
			})
		case "/sizes":
			json.NewEncoder(w).Encode(model.SizeListResponse{
				Sizes: []model.Size{{ID: "size-1"}}, ResultsAmount: 1,
			})
		case "/measurement-types":
			json.NewEncoder(w).Encode(model.MeasurementTypeListResponse{
				MeasurementTypes: []model.MeasurementType{{ID: "mt-1"}}, ResultsAmount: 1,
			})
		}
	})
	inventory := NewInventoryClient(c)

	categories, err := inventory.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, categories.ResultsAmount)

	colors, err := inventory.Colors(context.Background())
	require.NoError(t, err)
	require.Len(t, colors.Colors, 1)

	sizes, err := inventory.Sizes(context.Background())
	require.NoError(t, err)
	require.Len(t, sizes.Sizes, 1)

	types, err := inventory.MeasurementTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types.MeasurementTypes, 1)
}

func TestInventoryClient_ProductRoundTrip(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		switch r.Method {
		case http.MethodPost:
			var cmd model.AddProduct
			require.NoError(t, json.NewDecoder(r.Body).Decode(&cmd))
			assert.Equal(t, "category-1", cmd.CategoryID)
			json.NewEncoder(w).Encode(model.Product{ID: "product-1", Name: cmd.Name})
		case http.MethodPut:
			var cmd model.UpdateProduct
			require.NoError(t, json.NewDecoder(r.Body).Decode(&cmd))
			assert.Equal(t, "product-1", cmd.ID)
			json.NewEncoder(w).Encode(model.Product{ID: cmd.ID, Name: cmd.Name})
		}
	})
	inventory := NewInventoryClient(c)

	added, err := inventory.AddProduct(context.Background(), model.AddProduct{
		Name:       "Сукня льон",
		CategoryID: "category-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "product-1", added.ID)

	updated, err := inventory.UpdateProduct(context.Background(), model.UpdateProduct{
		ID:   "product-1",
		Name: "Сукня льон міді",
	})
	require.NoError(t, err)
	assert.Equal(t, "Сукня льон міді", updated.Name)
}

func TestInventoryClient_PhotoPaths(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/product-photos", r.URL.Path)
			assert.Equal(t, "variant-1", r.URL.Query().Get("productVariantId"))
			json.NewEncoder(w).Encode(model.PhotoListResponse{ResultsAmount: 0})
		case http.MethodDelete:
			assert.Equal(t, "/product-photos/photo-1", r.URL.Path)
			json.NewEncoder(w).Encode(true)
		}
	})
	inventory := NewInventoryClient(c)

	_, err := inventory.Photos(context.Background(), "variant-1")
	require.NoError(t, err)

	ok, err := inventory.DeletePhoto(context.Background(), "photo-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProductionClient_SewingQueue(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/order-items/sewing-queue", r.URL.Path)
		json.NewEncoder(w).Encode(model.SewingQueueResponse{
			SewingQueueItems: []model.SewingQueueItem{{ProductVariantID: "variant-1", QuantityToProduce: 3}},
			ResultsAmount:    1,
		})
	})

	queue, err := NewProductionClient(c).SewingQueue(context.Background())

	require.NoError(t, err)
	require.Len(t, queue.SewingQueueItems, 1)
	assert.Equal(t, 3, queue.SewingQueueItems[0].QuantityToProduce)
}

func TestProductionClient_SubmitSewedReport(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/order-items/sewing-report", r.URL.Path)
		var cmd model.SubmitSewedReport
		require.NoError(t, json.NewDecoder(r.Body).Decode(&cmd))
		assert.Equal(t, "item-1", cmd.OrderItemID)
		json.NewEncoder(w).Encode(true)
	})

	ok, err := NewProductionClient(c).SubmitSewedReport(context.Background(), model.SubmitSewedReport{
		ProductVariantID:    "variant-1",
		ActualSewedQuantity: 2,
		OrderItemID:         "item-1",
	})

	require.NoError(t, err)
	assert.True(t, ok)
}
