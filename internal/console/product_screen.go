package console

import (
	"context"

	"github.com/commercia/backoffice/internal/api"
	"github.com/commercia/backoffice/internal/domain/product"
	"github.com/commercia/backoffice/pkg/logger"
)

// ProductScreen is the product CRUD screen.
type ProductScreen struct {
	client *api.Client
	notify Notifier
	log    *logger.Logger

	Form           ProductForm
	Loading        bool
	FormVisible    bool
	SubmitDisabled bool

	rows    []product.Product
	editing *product.Product
}

// NewProductScreen creates the product screen.
func NewProductScreen(client *api.Client, notify Notifier, log *logger.Logger) *ProductScreen {
	if log == nil {
		log = logger.NewDefault("product-screen")
	}
	return &ProductScreen{client: client, notify: notify, log: log}
}

// Activate loads the product list.
func (s *ProductScreen) Activate(ctx context.Context) {
	s.Loading = true
	resp, err := s.client.Products().List(ctx)
	s.Loading = false
	if err != nil {
		s.notify.Error(err.Error())
		return
	}
	s.rows = resp.Data
}

// Rows returns the currently loaded list.
func (s *ProductScreen) Rows() []product.Product {
	return s.rows
}

// TopPurchased fetches the best-seller report for the home dashboard.
func (s *ProductScreen) TopPurchased(ctx context.Context) []product.Product {
	resp, err := s.client.Products().TopPurchased(ctx)
	if err != nil {
		s.notify.Error(err.Error())
		return nil
	}
	if !resp.Success {
		s.notify.Warning(resp.Message)
		return nil
	}
	return resp.Data
}

// BeginCreate resets the form and opens it for a new product.
func (s *ProductScreen) BeginCreate() {
	s.Form.Reset()
	s.editing = nil
	s.FormVisible = true
}

// BeginEdit locates the product in the loaded list and opens the form
// populated from it.
func (s *ProductScreen) BeginEdit(id int64) bool {
	s.Form.Reset()
	s.editing = nil
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.editing = &s.rows[i]
			break
		}
	}
	if s.editing == nil {
		return false
	}
	s.Form.FillFrom(*s.editing)
	s.FormVisible = true
	return true
}

// Submit creates or updates depending on whether an edit target is set.
func (s *ProductScreen) Submit(ctx context.Context) {
	if err := s.Form.Validate(); err != nil {
		return
	}

	s.SubmitDisabled = true
	s.Loading = true

	var st api.Status
	var err error
	if s.editing != nil {
		var resp api.ProductResult
		resp, err = s.client.Products().Edit(ctx, s.editing.ID, s.Form.Payload())
		st = resp.Status
	} else {
		var resp api.ProductResult
		resp, err = s.client.Products().Create(ctx, s.Form.Payload())
		st = resp.Status
	}

	s.SubmitDisabled = false
	s.Loading = false

	if err != nil {
		s.notify.Error(err.Error())
		return
	}
	s.handleStatus(ctx, st)
}

// Delete asks for confirmation, then removes the product and re-fetches
// the list.
func (s *ProductScreen) Delete(ctx context.Context, id int64) {
	if !s.notify.ConfirmDelete() {
		return
	}
	stop := s.notify.Loading("Deleting product...")
	st, err := s.client.Products().Delete(ctx, id)
	stop()
	if err != nil {
		s.notify.Error("We had a problem processing your request. Please try again.")
		return
	}
	s.Activate(ctx)
	s.notify.Success(st.Message)
}

func (s *ProductScreen) handleStatus(ctx context.Context, st api.Status) {
	if st.Success {
		s.Activate(ctx)
		s.notify.Success(st.Message)
		s.FormVisible = false
		return
	}
	s.notify.Warning("We had a problem processing your request. Please try again.")
}
