package console

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/commercia/backoffice/internal/domain/buyer"
	"github.com/commercia/backoffice/internal/domain/order"
	"github.com/commercia/backoffice/internal/domain/product"
	"github.com/commercia/backoffice/internal/domain/user"
)

// validate is shared by every form; validator instances cache struct
// metadata and are meant to be long-lived.
var validate = validator.New()

// LoginForm captures the login credentials.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (f *LoginForm) Validate() error { return validate.Struct(f) }

// BuyerForm captures buyer identity fields. Only the document, first
// given name, email and phone are mandatory.
type BuyerForm struct {
	Document       string `validate:"required,min=5"`
	FirstName      string `validate:"required"`
	SecondName     string
	FirstLastName  string
	SecondLastName string
	Email          string `validate:"required,email"`
	Phone          string `validate:"required"`
}

func (f *BuyerForm) Validate() error { return validate.Struct(f) }

// Reset clears every field.
func (f *BuyerForm) Reset() { *f = BuyerForm{} }

// FillFrom populates the form from an existing buyer record.
func (f *BuyerForm) FillFrom(b buyer.Buyer) {
	f.Document = b.Document
	f.FirstName = b.FirstName
	f.SecondName = b.SecondName
	f.FirstLastName = b.FirstLastName
	f.SecondLastName = b.SecondLastName
	f.Email = b.Email
	f.Phone = b.Phone
}

// Payload converts the form into the wire payload.
func (f *BuyerForm) Payload() buyer.Payload {
	return buyer.Payload{
		Document:       f.Document,
		FirstName:      f.FirstName,
		SecondName:     f.SecondName,
		FirstLastName:  f.FirstLastName,
		SecondLastName: f.SecondLastName,
		Email:          f.Email,
		Phone:          f.Phone,
	}
}

// ProductForm captures product fields.
type ProductForm struct {
	Name        string `validate:"required"`
	Description string
	Price       float64 `validate:"gte=0"`
	Stock       int     `validate:"gte=0"`
}

func (f *ProductForm) Validate() error { return validate.Struct(f) }

func (f *ProductForm) Reset() { *f = ProductForm{} }

// FillFrom populates the form from an existing product record.
func (f *ProductForm) FillFrom(p product.Product) {
	f.Name = p.Name
	f.Description = p.Description
	f.Price = p.Price
	f.Stock = p.Stock
}

// Payload converts the form into the wire payload.
func (f *ProductForm) Payload() product.Payload {
	return product.Payload{
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Stock:       f.Stock,
	}
}

// UserForm captures administrative-user fields. The password is required
// on create only; an empty password on edit keeps the stored one.
type UserForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string
}

// Validate checks the form. creating demands a password.
func (f *UserForm) Validate(creating bool) error {
	if err := validate.Struct(f); err != nil {
		return err
	}
	if creating {
		return validate.Var(f.Password, "required")
	}
	return nil
}

func (f *UserForm) Reset() { *f = UserForm{} }

// FillFrom populates the form from an existing user. The password never
// round-trips, so it always starts empty.
func (f *UserForm) FillFrom(u user.Profile) {
	f.Name = u.Name
	f.Email = u.Email
	f.Password = ""
}

// Payload converts the form into the wire payload.
func (f *UserForm) Payload() user.Payload {
	return user.Payload{Name: f.Name, Email: f.Email, Password: f.Password}
}

// OrderForm captures the order header metadata.
type OrderForm struct {
	Description   string
	PaymentMethod string `validate:"required"`
	BillingDate   string `validate:"required"`
	Total         float64
	HasDiscount   bool
}

// NewOrderForm returns a form with the defaults the wizard starts from:
// cash payment, billed today.
func NewOrderForm() OrderForm {
	return OrderForm{
		PaymentMethod: "efectivo",
		BillingDate:   time.Now().Format("2006-01-02"),
	}
}

func (f *OrderForm) Validate() error { return validate.Struct(f) }

// Reset restores the defaults.
func (f *OrderForm) Reset() { *f = NewOrderForm() }

// FillFrom populates the form from an existing order record.
func (f *OrderForm) FillFrom(o order.Order) {
	f.Description = o.Description
	f.PaymentMethod = o.PaymentMethod
	f.BillingDate = o.BillingDate
	f.Total = o.Total
	f.HasDiscount = o.HasDiscount
}

// Payload converts the form into the wire payload.
func (f *OrderForm) Payload() order.Payload {
	return order.Payload{
		Description:   f.Description,
		BillingDate:   f.BillingDate,
		PaymentMethod: f.PaymentMethod,
		Total:         f.Total,
		HasDiscount:   f.HasDiscount,
	}
}
