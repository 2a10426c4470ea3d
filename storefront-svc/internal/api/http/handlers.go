package httpapi

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dronemeds/storefront-svc/internal/domain"
	"dronemeds/storefront-svc/internal/service"
	"dronemeds/storefront-svc/internal/storage"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Catalog  service.CatalogServiceInterface
	Orders   service.OrderServiceInterface
	Location service.LocationServiceInterface
}

func NewHandler(catalog service.CatalogServiceInterface, orders service.OrderServiceInterface, location service.LocationServiceInterface) *Handler {
	return &Handler{
		Catalog:  catalog,
		Orders:   orders,
		Location: location,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/products", h.getProducts).Methods("GET")
	r.HandleFunc("/api/products/popular", h.getPopularProducts).Methods("GET")
	r.HandleFunc("/api/cart", h.quoteCart).Methods("POST")
	r.HandleFunc("/api/recommendations", h.getRecommendations).Methods("GET")
	r.HandleFunc("/api/location", h.getDefaultLocation).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.List())
}

func (h *Handler) getPopularProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	popular, err := h.Catalog.Popular(r.Context(), limit)
	if err != nil {
		logrus.WithError(err).Warn("popular products unavailable")
		writeJSON(w, http.StatusOK, []domain.ProductPopularity{})
		return
	}
	writeJSON(w, http.StatusOK, popular)
}

func (h *Handler) quoteCart(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Products []string `json:"products"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Catalog.Quote(payload.Products))
}

func (h *Handler) getRecommendations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))
	writeJSON(w, http.StatusOK, h.Catalog.Recommend(query["product"], limit))
}

func (h *Handler) getDefaultLocation(w http.ResponseWriter, r *http.Request) {
	location := h.Location.DefaultLocation(r.Context(), clientIP(r))
	writeJSON(w, http.StatusOK, map[string]string{"location": location})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	receipt, err := h.Orders.Place(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCoordinates),
			errors.Is(err, service.ErrInvalidCoordinates),
			errors.Is(err, service.ErrNoProducts),
			errors.Is(err, service.ErrInvalidDeliverySlot):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			logrus.WithError(err).Error("failed to place order")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, receipt)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.Orders.Get(mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Orders.PaymentQRCode(mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
