package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"tableside/internal/cart"
	"tableside/internal/domain"
	"tableside/internal/service"
)

type Handler struct {
	Catalog  service.CatalogServiceInterface
	Orders   service.OrderServiceInterface
	Tables   service.TableServiceInterface
	Sessions service.SessionResolver
	Carts    *cart.Registry
}

func NewHandler(catalog service.CatalogServiceInterface, orders service.OrderServiceInterface, tables service.TableServiceInterface, sessions service.SessionResolver, carts *cart.Registry) *Handler {
	return &Handler{
		Catalog:  catalog,
		Orders:   orders,
		Tables:   tables,
		Sessions: sessions,
		Carts:    carts,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu", h.createDish).Methods("POST")
	r.HandleFunc("/api/menu/{dishId}", h.updateDish).Methods("PUT")
	r.HandleFunc("/api/menu/{dishId}", h.deleteDish).Methods("DELETE")

	r.HandleFunc("/api/tables", h.getTables).Methods("GET")
	r.HandleFunc("/api/tables", h.createTable).Methods("POST")
	r.HandleFunc("/api/tables/{id}", h.deleteTable).Methods("DELETE")
	r.HandleFunc("/api/tables/{id}/qrcode", h.getTableQRCode).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{lineId}", h.updateCartItem).Methods("PUT")

	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")

	r.HandleFunc("/api/session", h.getSession).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":     "healthy",
		"service":    "tableside",
		"restaurant": domain.RestaurantName,
		"timestamp":  time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// isAdmin reports the launch-parameter capability flag. The page that scanned
// an admin link carries admin=true on its staff requests; there is no
// stronger authentication by design.
func isAdmin(r *http.Request) bool {
	return r.URL.Query().Get("admin") == "true"
}

func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !isAdmin(r) {
		http.Error(w, "Admin access required", http.StatusForbidden)
		return false
	}
	return true
}

// tableNumber pulls the diner's table identifier off the request. Every
// cart and session route is keyed by it.
func tableNumber(w http.ResponseWriter, r *http.Request) (string, bool) {
	table := r.URL.Query().Get("table")
	if table == "" {
		http.Error(w, service.ErrNoTable.Error(), http.StatusBadRequest)
		return "", false
	}
	return table, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	var validation service.ValidationError
	var transition *service.InvalidTransitionError
	switch {
	case errors.As(err, &validation):
		http.Error(w, validation.Error(), http.StatusBadRequest)
	case errors.As(err, &transition):
		http.Error(w, transition.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrTableNotFound):
		http.Error(w, "Table not found", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// --- menu ---

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.List())
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish.ID = ""
	saved, err := h.Catalog.Save(dish)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish.ID = mux.Vars(r)["dishId"]
	saved, err := h.Catalog.Save(dish)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	h.Catalog.Delete(mux.Vars(r)["dishId"])
	w.WriteHeader(http.StatusNoContent)
}

// --- tables ---

func (h *Handler) getTables(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, h.Tables.List())
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	table, err := h.Tables.Add(payload.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, table)
}

func (h *Handler) deleteTable(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	h.Tables.Delete(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Tables.QRCode(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// --- cart ---

type cartView struct {
	Items      []domain.CartItem `json:"items"`
	Total      float64           `json:"total"`
	TotalItems int               `json:"total_items"`
}

func viewOf(c *cart.Store) cartView {
	return cartView{Items: c.Items(), Total: c.Total(), TotalItems: c.ItemCount()}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	table, ok := tableNumber(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, viewOf(h.Carts.Get(table)))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	table, ok := tableNumber(w, r)
	if !ok {
		return
	}
	var payload struct {
		DishID        string `json:"dish_id"`
		Specification string `json:"specification,omitempty"`
		Quantity      int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dish, found := h.Catalog.Get(payload.DishID)
	if !found {
		http.Error(w, "Dish not found", http.StatusNotFound)
		return
	}

	var spec *domain.Specification
	if payload.Specification != "" {
		for _, s := range dish.Specifications {
			if s.Name == payload.Specification {
				chosen := s
				spec = &chosen
				break
			}
		}
		if spec == nil {
			http.Error(w, "Unknown specification for dish", http.StatusBadRequest)
			return
		}
	}

	c := h.Carts.Get(table)
	c.AddItem(*dish, spec, payload.Quantity)
	writeJSON(w, http.StatusOK, viewOf(c))
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	table, ok := tableNumber(w, r)
	if !ok {
		return
	}
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c := h.Carts.Get(table)
	c.UpdateQuantity(mux.Vars(r)["lineId"], payload.Quantity)
	writeJSON(w, http.StatusOK, viewOf(c))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	table, ok := tableNumber(w, r)
	if !ok {
		return
	}
	h.Carts.Get(table).Clear()
	w.WriteHeader(http.StatusNoContent)
}

// --- orders ---

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	// Validate the table before touching the registry so a bad request
	// never allocates a cart.
	table, ok := tableNumber(w, r)
	if !ok {
		return
	}
	order, err := h.Orders.PlaceOrder(h.Carts.Get(table), table)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if order == nil {
		// Empty cart: nothing actionable, nothing placed.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, h.Orders.List())
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	var payload struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Orders.UpdateStatus(mux.Vars(r)["id"], payload.Status); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- session ---

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	table, ok := tableNumber(w, r)
	if !ok {
		return
	}
	order, found := h.Sessions.Resolve(table)
	if !found {
		// No active order hides the tracker.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
