package console

import (
	"context"

	"github.com/commercia/backoffice/internal/api"
	"github.com/commercia/backoffice/internal/domain/order"
	"github.com/commercia/backoffice/internal/domain/orderdetail"
	"github.com/commercia/backoffice/pkg/logger"
)

// OrderScreen is the order list screen. Creation goes through the
// wizard; this screen covers listing, metadata edits, deletion, and
// detail inspection.
type OrderScreen struct {
	client *api.Client
	notify Notifier
	log    *logger.Logger

	Form           OrderForm
	Loading        bool
	EditVisible    bool
	DetailsVisible bool

	rows    []order.Order
	details []orderdetail.Detail
	editing *order.Order

	// Wizard composes new orders and refreshes this list on completion.
	Wizard *OrderWizard
}

// NewOrderScreen creates the order screen and its wizard.
func NewOrderScreen(client *api.Client, notify Notifier, log *logger.Logger) *OrderScreen {
	if log == nil {
		log = logger.NewDefault("order-screen")
	}
	s := &OrderScreen{client: client, notify: notify, log: log, Form: NewOrderForm()}
	s.Wizard = NewOrderWizard(client, notify, log)
	s.Wizard.onSubmitted = func(ctx context.Context) { s.Activate(ctx) }
	return s
}

// Activate loads the order list.
func (s *OrderScreen) Activate(ctx context.Context) {
	s.Loading = true
	resp, err := s.client.Orders().List(ctx)
	s.Loading = false
	if err != nil {
		s.notify.Error(err.Error())
		return
	}
	s.rows = resp.Data
}

// Rows returns the currently loaded list.
func (s *OrderScreen) Rows() []order.Order {
	return s.rows
}

// BeginEdit opens the metadata form for the order with the given id.
func (s *OrderScreen) BeginEdit(id int64) bool {
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
	s.EditVisible = true
	return true
}

// SubmitEdit updates the order's metadata.
func (s *OrderScreen) SubmitEdit(ctx context.Context) {
	if s.editing == nil {
		return
	}
	if err := s.Form.Validate(); err != nil {
		return
	}

	s.Loading = true
	resp, err := s.client.Orders().Edit(ctx, s.editing.ID, s.Form.Payload())
	s.Loading = false

	if err != nil {
		s.notify.Error(err.Error())
		return
	}
	if resp.Success {
		s.Activate(ctx)
		s.notify.Success(resp.Message)
		s.EditVisible = false
		return
	}
	s.notify.Warning("We had a problem processing your request. Please try again.")
}

// Delete asks for confirmation, then removes the order and re-fetches
// the list.
func (s *OrderScreen) Delete(ctx context.Context, id int64) {
	if !s.notify.ConfirmDelete() {
		return
	}
	stop := s.notify.Loading("Deleting order...")
	st, err := s.client.Orders().Delete(ctx, id)
	stop()
	if err != nil {
		s.notify.Error("We had a problem processing your request. Please try again.")
		return
	}
	s.Activate(ctx)
	s.notify.Success(st.Message)
}

// InspectDetails fetches the detail rows of one order and reveals the
// detail view on success.
func (s *OrderScreen) InspectDetails(ctx context.Context, orderID int64) {
	resp, err := s.client.OrderDetails().ByOrder(ctx, orderID)
	if err != nil {
		s.notify.Error("Could not fetch the order details.")
		return
	}
	if !resp.Success {
		s.notify.Warning(resp.Message)
		return
	}
	s.DetailsVisible = true
	s.details = resp.Data
}

// Details returns the rows loaded by InspectDetails.
func (s *OrderScreen) Details() []orderdetail.Detail {
	return s.details
}
