// Package testutil provides a fake commerce API server for tests. It
// speaks the same envelope and routes as the real backend, keeps all
// state in memory, and exposes knobs for injecting failures.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/commercia/backoffice/internal/domain/buyer"
	"github.com/commercia/backoffice/internal/domain/order"
	"github.com/commercia/backoffice/internal/domain/orderdetail"
	"github.com/commercia/backoffice/internal/domain/product"
	"github.com/commercia/backoffice/internal/domain/user"
)

// DefaultEmail and DefaultPassword are the credentials the fake server
// accepts at /login unless overridden.
const (
	DefaultEmail    = "admin@commercia.test"
	DefaultPassword = "admin-password"
)

var signingKey = []byte("testutil-signing-key")

type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Server is an in-memory stand-in for the commerce backend. All fields
// guarded by mu; the exported maps and counters may be read directly in
// assertions once the requests under test have completed.
type Server struct {
	mu sync.Mutex

	Email    string
	Password string

	buyers   map[int64]buyer.Buyer
	products map[int64]product.Product
	orders   map[int64]order.Order
	details  map[int64]orderdetail.Detail
	users    map[int64]user.Profile
	nextID   int64

	// CreateBuyerCalls counts POST /buyer/createBuyer requests.
	CreateBuyerCalls int
	// FailDetailForProduct makes createOrderDetail answer 500 for the
	// given product IDs.
	FailDetailForProduct map[int64]bool
	// FailStockUpdate makes updateStock answer 500 for all products.
	FailStockUpdate bool
	// RejectLogins makes /login answer 401 regardless of credentials.
	RejectLogins bool

	httpServer *httptest.Server
}

// NewServer starts a fake backend on a local listener.
func NewServer() *Server {
	s := &Server{
		Email:                DefaultEmail,
		Password:             DefaultPassword,
		buyers:               make(map[int64]buyer.Buyer),
		products:             make(map[int64]product.Product),
		orders:               make(map[int64]order.Order),
		details:              make(map[int64]orderdetail.Detail),
		users:                make(map[int64]user.Profile),
		FailDetailForProduct: make(map[int64]bool),
	}

	r := mux.NewRouter()
	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)

	authed := r.NewRoute().Subrouter()
	authed.Use(s.requireToken)
	authed.HandleFunc("/logout", s.handleLogout).Methods(http.MethodPost)

	authed.HandleFunc("/buyer/listBuyer", s.handleListBuyers).Methods(http.MethodGet)
	authed.HandleFunc("/buyer/getBuyerByDocument/{document}", s.handleGetBuyerByDocument).Methods(http.MethodGet)
	authed.HandleFunc("/buyer/createBuyer", s.handleCreateBuyer).Methods(http.MethodPost)
	authed.HandleFunc("/buyer/editBuyer/{id}", s.handleEditBuyer).Methods(http.MethodPut)
	authed.HandleFunc("/buyer/deleteBuyer/{id}", s.handleDeleteBuyer).Methods(http.MethodDelete)

	authed.HandleFunc("/product/listProduct", s.handleListProducts).Methods(http.MethodGet)
	authed.HandleFunc("/product/topPurchasedProducts", s.handleTopPurchased).Methods(http.MethodGet)
	authed.HandleFunc("/product/createProduct", s.handleCreateProduct).Methods(http.MethodPost)
	authed.HandleFunc("/product/editProduct/{id}", s.handleEditProduct).Methods(http.MethodPut)
	authed.HandleFunc("/product/updateStock/{id}", s.handleUpdateStock).Methods(http.MethodPatch)
	authed.HandleFunc("/product/deleteProduct/{id}", s.handleDeleteProduct).Methods(http.MethodDelete)

	authed.HandleFunc("/order/listOrder", s.handleListOrders).Methods(http.MethodGet)
	authed.HandleFunc("/order/createOrder", s.handleCreateOrder).Methods(http.MethodPost)
	authed.HandleFunc("/order/editOrder/{id}", s.handleEditOrder).Methods(http.MethodPut)
	authed.HandleFunc("/order/deleteOrder/{id}", s.handleDeleteOrder).Methods(http.MethodDelete)

	authed.HandleFunc("/orderDetail/listOrderDetail", s.handleListDetails).Methods(http.MethodGet)
	authed.HandleFunc("/orderDetail/getOrderDetails/{orderID}", s.handleDetailsByOrder).Methods(http.MethodGet)
	authed.HandleFunc("/orderDetail/createOrderDetail", s.handleCreateDetail).Methods(http.MethodPost)
	authed.HandleFunc("/orderDetail/editOrderDetail/{id}", s.handleEditDetail).Methods(http.MethodPut)
	authed.HandleFunc("/orderDetail/deleteOrderDetail/{id}", s.handleDeleteDetail).Methods(http.MethodDelete)

	authed.HandleFunc("/user/listUser", s.handleListUsers).Methods(http.MethodGet)
	authed.HandleFunc("/user/createUser", s.handleCreateUser).Methods(http.MethodPost)
	authed.HandleFunc("/user/editUser/{id}", s.handleEditUser).Methods(http.MethodPut)
	authed.HandleFunc("/user/deleteUser/{id}", s.handleDeleteUser).Methods(http.MethodDelete)

	s.httpServer = httptest.NewServer(r)
	return s
}

// URL returns the fake backend's base URL.
func (s *Server) URL() string {
	return s.httpServer.URL
}

// Close shuts the listener down.
func (s *Server) Close() {
	s.httpServer.Close()
}

// IssueToken signs a token the server's auth middleware accepts, for
// tests that skip the login round-trip.
func (s *Server) IssueToken() string {
	token, _ := issueToken(s.Email)
	return token
}

func issueToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"sub": email,
		"jti": uuid.New().String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw := strings.TrimPrefix(header, "Bearer ")
		if header == raw || raw == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing token"})
			return
		}
		_, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			return signingKey, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request"})
		return
	}

	s.mu.Lock()
	reject := s.RejectLogins || creds.Email != s.Email || creds.Password != s.Password
	s.mu.Unlock()
	if reject {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}

	token, err := issueToken(creds.Email)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not sign token"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user": user.Profile{
			ID:    1,
			Name:  "Admin",
			Email: creds.Email,
		},
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Session closed"})
}

// SeedBuyer stores a buyer and returns its assigned ID.
func (s *Server) SeedBuyer(b buyer.Buyer) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == 0 {
		b.ID = s.allocID()
	}
	s.buyers[b.ID] = b
	return b.ID
}

// SeedProduct stores a product and returns its assigned ID.
func (s *Server) SeedProduct(p product.Product) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		p.ID = s.allocID()
	}
	s.products[p.ID] = p
	return p.ID
}

// SeedOrder stores an order and returns its assigned ID.
func (s *Server) SeedOrder(o order.Order) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == 0 {
		o.ID = s.allocID()
	}
	s.orders[o.ID] = o
	return o.ID
}

// SeedUser stores a user profile and returns its assigned ID.
func (s *Server) SeedUser(u user.Profile) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = s.allocID()
	}
	s.users[u.ID] = u
	return u.ID
}

// Product returns the stored product and whether it exists.
func (s *Server) Product(id int64) (product.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	return p, ok
}

// Buyers returns a snapshot of all stored buyers.
func (s *Server) Buyers() []buyer.Buyer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]buyer.Buyer, 0, len(s.buyers))
	for _, b := range s.buyers {
		out = append(out, b)
	}
	return out
}

// DetailsForOrder returns the stored details belonging to one order.
func (s *Server) DetailsForOrder(orderID int64) []orderdetail.Detail {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []orderdetail.Detail
	for _, d := range s.details {
		if d.OrderID == orderID {
			out = append(out, d)
		}
	}
	return out
}

// Orders returns a snapshot of all stored orders.
func (s *Server) Orders() []order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out
}

// allocID must be called with mu held.
func (s *Server) allocID() int64 {
	s.nextID++
	return s.nextID
}

func (s *Server) handleListBuyers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Buyers fetched", Data: s.Buyers()})
}

func (s *Server) handleGetBuyerByDocument(w http.ResponseWriter, r *http.Request) {
	document := mux.Vars(r)["document"]
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.buyers {
		if b.Document == document {
			writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Buyer found", Data: b})
			return
		}
	}
	// A miss is not an error: the envelope stays successful with a
	// null payload.
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "No buyer registered with that document", Data: nil})
}

func (s *Server) handleCreateBuyer(w http.ResponseWriter, r *http.Request) {
	var payload buyer.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request"})
		return
	}
	s.mu.Lock()
	s.CreateBuyerCalls++
	b := buyer.Buyer{
		ID:             s.allocID(),
		Document:       payload.Document,
		FirstName:      payload.FirstName,
		SecondName:     payload.SecondName,
		FirstLastName:  payload.FirstLastName,
		SecondLastName: payload.SecondLastName,
		Phone:          payload.Phone,
		Email:          payload.Email,
	}
	s.buyers[b.ID] = b
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Buyer created", Data: b})
}

func (s *Server) handleEditBuyer(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	var payload buyer.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.buyers[id]
	if !ok {
		writeJSON(w, http.StatusOK, envelope{Success: false, Message: "Buyer not found"})
		return
	}
	b.Document = payload.Document
	b.FirstName = payload.FirstName
	b.SecondName = payload.SecondName
	b.FirstLastName = payload.FirstLastName
	b.SecondLastName = payload.SecondLastName
	b.Phone = payload.Phone
	b.Email = payload.Email
	s.buyers[id] = b
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Buyer updated", Data: b})
}

func (s *Server) handleDeleteBuyer(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.buyers[id]; !ok {
		writeJSON(w, http.StatusOK, envelope{Success: false, Message: "Buyer not found"})
		return
	}
	delete(s.buyers, id)
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Buyer deleted"})
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]product.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Products fetched", Data: out})
}

func (s *Server) handleTopPurchased(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	var out []product.Product
	for _, p := range s.products {
		if p.TotalUnitsSold != "" {
			out = append(out, p)
		}
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Top products fetched", Data: out})
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var payload product.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request"})
		return
	}
	s.mu.Lock()
	p := product.Product{
		ID:          s.allocID(),
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		Stock:       payload.Stock,
	}
	s.products[p.ID] = p
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Product created", Data: p})
}

func (s *Server) handleEditProduct(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	var payload product.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		writeJSON(w, http.StatusOK, envelope{Success: false, Message: "Product not found"})
		return
	}
	p.Name = payload.Name
	p.Description = payload.Description
	p.Price = payload.Price
	p.Stock = payload.Stock
	s.products[id] = p
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Product updated", Data: p})
}

func (s *Server) handleUpdateStock(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	fail := s.FailStockUpdate
	s.mu.Unlock()
	if fail {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "stock update unavailable"})
		return
	}

	id := pathID(r, "id")
	var payload struct {
		Stock int `json:"stock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		writeJSON(w, http.StatusOK, envelope{Success: false, Message: "Product not found"})
		return
	}
	p.Stock = payload.Stock
	s.products[id] = p
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Stock updated"})
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		writeJSON(w, http.StatusOK, envelope{Success: false, Message: "Product not found"})
		return
	}
	delete(s.products, id)
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Product deleted"})
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Orders fetched", Data: s.Orders()})
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var payload order.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request"})
		return
	}
	now := time.Now().UTC().Format(time.RFC3339)
	s.mu.Lock()
	o := order.Order{
		ID:            s.allocID(),
		Total:         payload.Total,
		Description:   payload.Description,
		BillingDate:   payload.BillingDate,
		PaymentMethod: payload.PaymentMethod,
		HasDiscount:   payload.HasDiscount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.orders[o.ID] = o
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Order created", Data: o})
}

func (s *Server) handleEditOrder(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	var payload order.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		writeJSON(w, http.StatusOK, envelope{Success: false, Message: "Order not found"})
		return
	}
	o.Total = payload.Total
	o.Description = payload.Description
	o.BillingDate = payload.BillingDate
	o.PaymentMethod = payload.PaymentMethod
	o.HasDiscount = payload.HasDiscount
	o.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	s.orders[id] = o
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Order updated", Data: o})
}

func (s *Server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		writeJSON(w, http.StatusOK, envelope{Success: false, Message: "Order not found"})
		return
	}
	delete(s.orders, id)
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Order deleted"})
}

func (s *Server) handleListDetails(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]orderdetail.Detail, 0, len(s.details))
	for _, d := range s.details {
		out = append(out, d)
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Order details fetched", Data: out})
}

func (s *Server) handleDetailsByOrder(w http.ResponseWriter, r *http.Request) {
	orderID := pathID(r, "orderID")
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Order details fetched", Data: s.DetailsForOrder(orderID)})
}

func (s *Server) handleCreateDetail(w http.ResponseWriter, r *http.Request) {
	var payload orderdetail.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request"})
		return
	}
	s.mu.Lock()
	if s.FailDetailForProduct[payload.ProductID] {
		s.mu.Unlock()
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not store order detail"})
		return
	}
	d := orderdetail.Detail{
		ID:        s.allocID(),
		OrderID:   payload.OrderID,
		BuyerID:   payload.BuyerID,
		ProductID: payload.ProductID,
		Quantity:  payload.Quantity,
		UnitPrice: payload.UnitPrice,
		Subtotal:  payload.Subtotal,
	}
	s.details[d.ID] = d
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Order detail created", Data: d})
}

func (s *Server) handleEditDetail(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	var payload orderdetail.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.details[id]
	if !ok {
		writeJSON(w, http.StatusOK, envelope{Success: false, Message: "Order detail not found"})
		return
	}
	d.OrderID = payload.OrderID
	d.BuyerID = payload.BuyerID
	d.ProductID = payload.ProductID
	d.Quantity = payload.Quantity
	d.UnitPrice = payload.UnitPrice
	d.Subtotal = payload.Subtotal
	s.details[id] = d
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Order detail updated", Data: d})
}

func (s *Server) handleDeleteDetail(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.details[id]; !ok {
		writeJSON(w, http.StatusOK, envelope{Success: false, Message: "Order detail not found"})
		return
	}
	delete(s.details, id)
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Order detail deleted"})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]user.Profile, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Users fetched", Data: out})
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var payload user.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request"})
		return
	}
	s.mu.Lock()
	u := user.Profile{
		ID:    s.allocID(),
		Name:  payload.Name,
		Email: payload.Email,
	}
	s.users[u.ID] = u
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "User created", Data: u})
}

func (s *Server) handleEditUser(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	var payload user.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		writeJSON(w, http.StatusOK, envelope{Success: false, Message: "User not found"})
		return
	}
	u.Name = payload.Name
	u.Email = payload.Email
	s.users[id] = u
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "User updated", Data: u})
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		writeJSON(w, http.StatusOK, envelope{Success: false, Message: "User not found"})
		return
	}
	delete(s.users, id)
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "User deleted"})
}

func pathID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	return id
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
