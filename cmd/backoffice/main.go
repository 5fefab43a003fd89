// Command backoffice is the terminal back-office console for the
// commerce platform: session login, buyer, product, order, and user
// administration, and an order composition wizard.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/commercia/backoffice/internal/api"
	"github.com/commercia/backoffice/internal/cli"
	"github.com/commercia/backoffice/internal/config"
	"github.com/commercia/backoffice/internal/console"
	"github.com/commercia/backoffice/internal/currency"
	"github.com/commercia/backoffice/internal/session"
	"github.com/commercia/backoffice/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config/backoffice.yaml", "Path to the configuration file")
	envFile := flag.String("env", ".env", "Path to an optional .env file")
	flag.Parse()

	// A missing .env file is fine; explicit settings still come from
	// the real environment.
	_ = godotenv.Load(*envFile)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewDefault("backoffice")
	log.SetLevel(cfg.LogLevel)

	store, err := session.NewFile(cfg.SessionFile)
	if err != nil {
		log.WithError(err).Error("could not open session store")
		os.Exit(1)
	}

	client, err := api.New(api.Config{
		BaseURL: cfg.APIBaseURL,
		Session: store,
		Timeout: cfg.RequestTimeout,
		Log:     log,
	})
	if err != nil {
		log.WithError(err).Error("could not build API client")
		os.Exit(1)
	}

	term := cli.NewTerminal()
	router := console.NewRouter(console.NewGuard(store), log)

	app := &app{
		term:     term,
		store:    store,
		router:   router,
		login:    console.NewLoginScreen(client, store, router, term, log),
		buyers:   console.NewBuyerScreen(client, term, log),
		products: console.NewProductScreen(client, term, log),
		orders:   console.NewOrderScreen(client, term, log),
		users:    console.NewUserScreen(client, term, log),
	}
	app.run(context.Background())
}

type app struct {
	term   *cli.Terminal
	store  session.Store
	router *console.Router

	login    *console.LoginScreen
	buyers   *console.BuyerScreen
	products *console.ProductScreen
	orders   *console.OrderScreen
	users    *console.UserScreen
}

func (a *app) run(ctx context.Context) {
	a.term.Info("Commerce back office. Type 'help' for commands.")
	if _, ok := a.store.User(); ok {
		a.router.Navigate(console.RouteHome)
	}

	for {
		cmd := strings.Fields(a.term.Prompt(fmt.Sprintf("[%s]>", a.router.Current())))
		if len(cmd) == 0 {
			continue
		}
		switch cmd[0] {
		case "help":
			a.help()
		case "login":
			a.doLogin(ctx)
		case "logout":
			a.login.Logout(ctx)
			a.term.Info("Session closed.")
		case "buyers":
			a.doBuyers(ctx, cmd[1:])
		case "products":
			a.doProducts(ctx, cmd[1:])
		case "orders":
			a.doOrders(ctx, cmd[1:])
		case "users":
			a.doUsers(ctx, cmd[1:])
		case "top":
			a.doTopProducts(ctx)
		case "quit", "exit":
			return
		default:
			a.term.Warning("Unknown command. Type 'help' for commands.")
		}
	}
}

func (a *app) help() {
	a.term.Info("login | logout | buyers [new|edit ID|delete ID] | products [new|edit ID|delete ID] | orders [new|edit ID|delete ID|details ID] | users [new|edit ID|delete ID] | top | quit")
}

func (a *app) doLogin(ctx context.Context) {
	a.login.Form.Email = a.term.Prompt("Email:")
	a.login.Form.Password = a.term.Prompt("Password:")
	if err := a.login.Form.Validate(); err != nil {
		a.term.Warning("Enter a valid email and a password.")
		return
	}
	if a.login.Submit(ctx) {
		if user, ok := a.store.User(); ok {
			a.term.Success("Welcome, " + user.Name + " <" + user.Email + ">.")
		}
		// Home dashboard: the best sellers at a glance.
		for _, p := range a.products.TopPurchased(ctx) {
			a.term.Info(fmt.Sprintf("%s sold %s units", p.Name, p.TotalUnitsSold))
		}
	}
}

// guardNavigate refuses resource commands without a session.
func (a *app) guardNavigate(to console.Route) bool {
	if !a.router.Navigate(to) {
		a.term.Warning("Please log in first.")
		return false
	}
	return true
}

func (a *app) doBuyers(ctx context.Context, args []string) {
	if !a.guardNavigate(console.RouteBuyers) {
		return
	}
	s := a.buyers

	if len(args) == 0 {
		s.Activate(ctx)
		for _, b := range s.Rows() {
			a.term.Info(fmt.Sprintf("#%d %s %s %s (%s)", b.ID, b.Document, b.FirstName, b.FirstLastName, b.Email))
		}
		return
	}

	switch args[0] {
	case "new":
		s.BeginCreate()
		a.fillBuyerForm(s)
		s.Submit(ctx)
	case "edit":
		id, ok := parseID(args, a.term)
		if !ok {
			return
		}
		s.Activate(ctx)
		if !s.BeginEdit(id) {
			a.term.Warning("No buyer with that ID.")
			return
		}
		a.fillBuyerForm(s)
		s.Submit(ctx)
	case "delete":
		if id, ok := parseID(args, a.term); ok {
			s.Activate(ctx)
			s.Delete(ctx, id)
		}
	default:
		a.term.Warning("Usage: buyers [new|edit ID|delete ID]")
	}
}

func (a *app) fillBuyerForm(s *console.BuyerScreen) {
	s.Form.Document = promptDefault(a.term, "Document:", s.Form.Document)
	s.Form.FirstName = promptDefault(a.term, "First name:", s.Form.FirstName)
	s.Form.SecondName = promptDefault(a.term, "Second name:", s.Form.SecondName)
	s.Form.FirstLastName = promptDefault(a.term, "First last name:", s.Form.FirstLastName)
	s.Form.SecondLastName = promptDefault(a.term, "Second last name:", s.Form.SecondLastName)
	s.Form.Phone = promptDefault(a.term, "Phone:", s.Form.Phone)
	s.Form.Email = promptDefault(a.term, "Email:", s.Form.Email)
}

func (a *app) doProducts(ctx context.Context, args []string) {
	if !a.guardNavigate(console.RouteProducts) {
		return
	}
	s := a.products

	if len(args) == 0 {
		s.Activate(ctx)
		for _, p := range s.Rows() {
			a.term.Info(fmt.Sprintf("#%d %s %s (stock %d)", p.ID, p.Name, currency.Format(p.Price), p.Stock))
		}
		return
	}

	switch args[0] {
	case "new":
		s.BeginCreate()
		a.fillProductForm(s)
		s.Submit(ctx)
	case "edit":
		id, ok := parseID(args, a.term)
		if !ok {
			return
		}
		s.Activate(ctx)
		if !s.BeginEdit(id) {
			a.term.Warning("No product with that ID.")
			return
		}
		a.fillProductForm(s)
		s.Submit(ctx)
	case "delete":
		if id, ok := parseID(args, a.term); ok {
			s.Activate(ctx)
			s.Delete(ctx, id)
		}
	default:
		a.term.Warning("Usage: products [new|edit ID|delete ID]")
	}
}

func (a *app) fillProductForm(s *console.ProductScreen) {
	s.Form.Name = promptDefault(a.term, "Name:", s.Form.Name)
	s.Form.Description = promptDefault(a.term, "Description:", s.Form.Description)
	s.Form.Price = promptFloat(a.term, "Price:", s.Form.Price)
	s.Form.Stock = promptInt(a.term, "Stock:", s.Form.Stock)
}

func (a *app) doTopProducts(ctx context.Context) {
	if !a.guardNavigate(console.RouteHome) {
		return
	}
	for _, p := range a.products.TopPurchased(ctx) {
		a.term.Info(fmt.Sprintf("%s sold %s units", p.Name, p.TotalUnitsSold))
	}
}

func (a *app) doOrders(ctx context.Context, args []string) {
	if !a.guardNavigate(console.RouteOrders) {
		return
	}
	s := a.orders

	if len(args) == 0 {
		s.Activate(ctx)
		for _, o := range s.Rows() {
			a.term.Info(fmt.Sprintf("#%d %s %s %s", o.ID, o.BillingDate, currency.Format(o.Total), o.PaymentMethod))
		}
		return
	}

	switch args[0] {
	case "new":
		a.runWizard(ctx)
	case "edit":
		id, ok := parseID(args, a.term)
		if !ok {
			return
		}
		s.Activate(ctx)
		if !s.BeginEdit(id) {
			a.term.Warning("No order with that ID.")
			return
		}
		s.Form.Description = promptDefault(a.term, "Description:", s.Form.Description)
		s.Form.BillingDate = promptDefault(a.term, "Billing date:", s.Form.BillingDate)
		s.Form.PaymentMethod = promptDefault(a.term, "Payment method:", s.Form.PaymentMethod)
		s.SubmitEdit(ctx)
	case "delete":
		if id, ok := parseID(args, a.term); ok {
			s.Activate(ctx)
			s.Delete(ctx, id)
		}
	case "details":
		id, ok := parseID(args, a.term)
		if !ok {
			return
		}
		s.InspectDetails(ctx, id)
		for _, d := range s.Details() {
			a.term.Info(fmt.Sprintf("product #%d x%d at %s = %s", d.ProductID, d.Quantity, currency.Format(d.UnitPrice), currency.Format(d.Subtotal)))
		}
	default:
		a.term.Warning("Usage: orders [new|edit ID|delete ID|details ID]")
	}
}

// runWizard walks the two wizard steps interactively.
func (a *app) runWizard(ctx context.Context) {
	w := a.orders.Wizard
	w.Start(ctx)

	w.Buyer.Document = a.term.Prompt("Buyer document:")
	w.ResolveDocument(ctx)
	if !w.HideExtraFields {
		w.Buyer.FirstName = a.term.Prompt("First name:")
		w.Buyer.SecondName = a.term.Prompt("Second name:")
		w.Buyer.FirstLastName = a.term.Prompt("First last name:")
		w.Buyer.SecondLastName = a.term.Prompt("Second last name:")
		w.Buyer.Phone = a.term.Prompt("Phone:")
		w.Buyer.Email = a.term.Prompt("Email:")
	}
	if !w.NextStep(ctx) {
		a.term.Warning("Complete the buyer data before continuing.")
		w.Back()
		return
	}

	for i := 0; ; {
		a.term.Info("Products:")
		for _, p := range w.Catalog() {
			a.term.Info(fmt.Sprintf("  #%d %s %s (stock %d)", p.ID, p.Name, currency.Format(p.Price), p.Stock))
		}
		productID := promptInt64(a.term, "Product ID:", 0)
		w.SelectProduct(i, productID)
		w.SetQuantity(i, promptInt(a.term, "Quantity:", 1))
		if strings.EqualFold(a.term.Prompt("Add another line? [y/N]"), "y") {
			w.AddLine()
			i++
			continue
		}
		break
	}

	w.Meta.Description = promptDefault(a.term, "Order description:", w.Meta.Description)
	w.Meta.BillingDate = promptDefault(a.term, "Billing date:", w.Meta.BillingDate)
	w.Meta.PaymentMethod = promptDefault(a.term, "Payment method:", w.Meta.PaymentMethod)
	a.term.Info("Order total: " + currency.Format(w.Total()))

	w.Submit(ctx)
}

func (a *app) doUsers(ctx context.Context, args []string) {
	if !a.guardNavigate(console.RouteUsers) {
		return
	}
	s := a.users

	if len(args) == 0 {
		s.Activate(ctx)
		for _, u := range s.Rows() {
			a.term.Info(fmt.Sprintf("#%d %s (%s)", u.ID, u.Name, u.Email))
		}
		return
	}

	switch args[0] {
	case "new":
		s.BeginCreate()
		s.Form.Name = a.term.Prompt("Name:")
		s.Form.Email = a.term.Prompt("Email:")
		s.Form.Password = a.term.Prompt("Password:")
		s.Submit(ctx)
	case "edit":
		id, ok := parseID(args, a.term)
		if !ok {
			return
		}
		s.Activate(ctx)
		if !s.BeginEdit(id) {
			a.term.Warning("No user with that ID.")
			return
		}
		s.Form.Name = promptDefault(a.term, "Name:", s.Form.Name)
		s.Form.Email = promptDefault(a.term, "Email:", s.Form.Email)
		s.Submit(ctx)
	case "delete":
		if id, ok := parseID(args, a.term); ok {
			s.Activate(ctx)
			s.Delete(ctx, id)
		}
	default:
		a.term.Warning("Usage: users [new|edit ID|delete ID]")
	}
}

func parseID(args []string, term *cli.Terminal) (int64, bool) {
	if len(args) < 2 {
		term.Warning("An ID is required.")
		return 0, false
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		term.Warning("IDs are numeric.")
		return 0, false
	}
	return id, true
}

// promptDefault keeps the current value when the answer is blank.
func promptDefault(term *cli.Terminal, label, current string) string {
	if current != "" {
		label = fmt.Sprintf("%s [%s]", label, current)
	}
	if answer := term.Prompt(label); answer != "" {
		return answer
	}
	return current
}

func promptInt(term *cli.Terminal, label string, current int) int {
	answer := term.Prompt(fmt.Sprintf("%s [%d]", label, current))
	if answer == "" {
		return current
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return current
	}
	return n
}

func promptInt64(term *cli.Terminal, label string, current int64) int64 {
	answer := term.Prompt(fmt.Sprintf("%s [%d]", label, current))
	if answer == "" {
		return current
	}
	n, err := strconv.ParseInt(answer, 10, 64)
	if err != nil {
		return current
	}
	return n
}

func promptFloat(term *cli.Terminal, label string, current float64) float64 {
	answer := term.Prompt(fmt.Sprintf("%s [%g]", label, current))
	if answer == "" {
		return current
	}
	f, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return current
	}
	return f
}
