// Package storefront is the application-state container: it owns one
// logical session's managers and UI flags and publishes domain events
// after successful mutations.
package storefront

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ariefcatur/gunpla-storefront/internal/apperr"
	"github.com/ariefcatur/gunpla-storefront/internal/cart"
	"github.com/ariefcatur/gunpla-storefront/internal/catalog"
	"github.com/ariefcatur/gunpla-storefront/internal/checkout"
	"github.com/ariefcatur/gunpla-storefront/internal/clock"
	"github.com/ariefcatur/gunpla-storefront/internal/events"
	"github.com/ariefcatur/gunpla-storefront/internal/exchange"
	"github.com/ariefcatur/gunpla-storefront/internal/session"
	"github.com/ariefcatur/gunpla-storefront/internal/storage"
	"github.com/ariefcatur/gunpla-storefront/internal/terminal"
	"github.com/ariefcatur/gunpla-storefront/internal/wishlist"
)

type Deps struct {
	Catalog   *catalog.Catalog
	Store     storage.Store
	Publisher events.Publisher
	Producer  string // envelope producer name

	Promo          cart.Promo
	StrictComments bool

	LoginDelay    time.Duration
	RegisterDelay time.Duration
	PaymentDelay  time.Duration
	Sleep         clock.Sleeper
	Now           clock.Now

	Log *zap.Logger
}

type App struct {
	catalog  *catalog.Catalog
	cart     *cart.Cart
	wishlist *wishlist.Wishlist
	board    *exchange.Board
	session  *session.Manager
	checkout *checkout.Checkout
	terminal *terminal.Interpreter
	deals    *catalog.Countdown

	pub      events.Publisher
	producer string
	log      *zap.Logger

	mu           sync.Mutex
	view         View
	theme        Theme
	cartOpen     bool
	selected     string
	terminalOpen bool
}

// New restores the persisted board and session and starts on HOME with the EFSF theme.
func New(ctx context.Context, d Deps) (*App, error) {
	if d.Catalog == nil {
		return nil, errors.New("storefront: catalog is required")
	}
	if d.Store == nil {
		d.Store = storage.NewMemory()
	}
	if d.Publisher == nil {
		d.Publisher = events.Nop{}
	}
	if d.Producer == "" {
		d.Producer = "gunpla-storefront"
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	ids := clock.NewIDs(d.Now)

	board, err := exchange.NewBoard(ctx, d.Store, exchange.Options{
		StrictComments: d.StrictComments,
		Now:            d.Now,
		IDs:            ids,
		Log:            d.Log.Named("exchange"),
	})
	if err != nil {
		return nil, err
	}
	sess, err := session.Open(ctx, d.Store, session.Options{
		LoginDelay:    d.LoginDelay,
		RegisterDelay: d.RegisterDelay,
		Sleep:         d.Sleep,
		Now:           d.Now,
		Log:           d.Log.Named("session"),
	})
	if err != nil {
		return nil, err
	}

	c := cart.New(d.Promo, d.Log.Named("cart"))
	a := &App{
		catalog:  d.Catalog,
		cart:     c,
		wishlist: wishlist.New(),
		board:    board,
		session:  sess,
		checkout: checkout.New(c, checkout.Options{
			PaymentDelay: d.PaymentDelay,
			Sleep:        d.Sleep,
			Now:          d.Now,
			Log:          d.Log.Named("checkout"),
		}),
		deals:    catalog.NewCountdown(),
		pub:      d.Publisher,
		producer: d.Producer,
		log:      d.Log,
		view:     ViewHome,
		theme:    ThemeEFSF,
	}
	a.terminal = terminal.New(termHost{a}, d.Log.Named("terminal"))
	return a, nil
}

func (a *App) Catalog() *catalog.Catalog       { return a.catalog }
func (a *App) Cart() *cart.Cart                { return a.cart }
func (a *App) Wishlist() *wishlist.Wishlist    { return a.wishlist }
func (a *App) Board() *exchange.Board          { return a.board }
func (a *App) Session() *session.Manager       { return a.session }
func (a *App) Checkout() *checkout.Checkout    { return a.checkout }
func (a *App) Terminal() *terminal.Interpreter { return a.terminal }
func (a *App) Deals() *catalog.Countdown       { return a.deals }

// ---- navigation & UI flags ----

func (a *App) Navigate(v View) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view = v
}

// View is the raw state as last navigated.
func (a *App) View() View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}

// Screen is the view that actually renders: unknown states fall back to SHOP,
// PILOT without a signed-in pilot shows LOGIN.
func (a *App) Screen() View {
	v := a.View()
	if _, ok := screens[v]; !ok {
		return ViewShop
	}
	if v == ViewPilot && !a.session.Authenticated() {
		return ViewLogin
	}
	return v
}

// OpenCheckout leaves the cart drawer for the checkout screen.
func (a *App) OpenCheckout() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cartOpen = false
	a.view = ViewCheckout
}

func (a *App) Theme() Theme {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.theme
}

func (a *App) ToggleTheme() Theme {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.theme = a.theme.toggled()
	return a.theme
}

func (a *App) SetTheme(t Theme) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.theme = t
}

func (a *App) SetCartOpen(open bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cartOpen = open
}

func (a *App) SetTerminalOpen(open bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.terminalOpen = open
}

// SelectProduct opens the detail panel; an empty id closes it.
func (a *App) SelectProduct(id string) error {
	if id != "" {
		if _, ok := a.catalog.Get(id); !ok {
			return apperr.NotFoundf("product %s not found", id)
		}
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.selected = id
	return nil
}

// Snapshot is the derived view model the UI renders from.
type Snapshot struct {
	View          View             `json:"view"`
	Screen        View             `json:"screen"`
	Theme         Theme            `json:"theme"`
	CartOpen      bool             `json:"cart_open"`
	TerminalOpen  bool             `json:"terminal_open"`
	Selected      *catalog.Product `json:"selected,omitempty"`
	CartCount     int              `json:"cart_count"`
	Totals        cart.Totals      `json:"totals"`
	WishlistCount int              `json:"wishlist_count"`
	Pilot         *session.User    `json:"pilot,omitempty"`
	Busy          bool             `json:"busy"`
}

func (a *App) Snapshot() Snapshot {
	a.mu.Lock()
	s := Snapshot{
		View:         a.view,
		Theme:        a.theme,
		CartOpen:     a.cartOpen,
		TerminalOpen: a.terminalOpen,
	}
	selected := a.selected
	a.mu.Unlock()

	s.Screen = a.Screen()
	if p, ok := a.catalog.Get(selected); ok {
		s.Selected = &p
	}
	s.Totals = a.cart.Totals()
	s.CartCount = s.Totals.Count
	s.WishlistCount = a.wishlist.Len()
	if u, ok := a.session.Current(); ok {
		s.Pilot = &u
	}
	s.Busy = a.session.Busy() || a.checkout.Processing()
	return s
}

// ---- mutations that emit events ----

// AddToCart looks the product up in the catalog so prices never come from the caller.
func (a *App) AddToCart(id string, qty int) error {
	p, ok := a.catalog.Get(id)
	if !ok {
		return apperr.NotFoundf("product %s not found", id)
	}
	if err := a.cart.Add(p, qty); err != nil {
		return err
	}
	a.SetCartOpen(true)
	return nil
}

func (a *App) ToggleWishlist(id string) (bool, error) {
	if _, ok := a.catalog.Get(id); !ok {
		return false, apperr.NotFoundf("product %s not found", id)
	}
	return a.wishlist.Toggle(id), nil
}

func (a *App) CreatePost(ctx context.Context, f exchange.PostForm) (exchange.Post, error) {
	p, err := a.board.CreatePost(ctx, f)
	if err != nil {
		return exchange.Post{}, err
	}
	a.publish(ctx, events.TopicPostCreated, events.EventPostCreated, p.ID, events.PostCreatedPayload{
		PostID:    p.ID,
		Author:    p.Author,
		Have:      p.Have,
		Want:      p.Want,
		Condition: string(p.Condition),
	})
	return p, nil
}

// AddComment returns nil, nil when the board ignored the comment.
func (a *App) AddComment(ctx context.Context, postID, text string) (*exchange.Comment, error) {
	c, err := a.board.AddComment(ctx, postID, text)
	if err != nil || c == nil {
		return c, err
	}
	a.publish(ctx, events.TopicCommentAdded, events.EventCommentAdded, postID, events.CommentAddedPayload{
		PostID:    postID,
		CommentID: c.ID,
		Author:    c.Author,
	})
	return c, nil
}

func (a *App) SetPostStatus(ctx context.Context, postID string, to exchange.Status) (exchange.Post, error) {
	from, err := a.board.SetStatus(ctx, postID, to)
	if err != nil {
		return exchange.Post{}, err
	}
	a.publish(ctx, events.TopicPostStatusChanged, events.EventPostStatusChanged, postID, events.PostStatusChangedPayload{
		PostID: postID,
		From:   string(from),
		To:     string(to),
	})
	p, _ := a.board.Get(postID)
	return p, nil
}

func (a *App) Register(ctx context.Context, f session.RegisterForm) (session.User, error) {
	u, err := a.session.Register(ctx, f)
	if err != nil {
		return u, err
	}
	a.publish(ctx, events.TopicPilotRegistered, events.EventPilotRegistered, u.ID, events.PilotRegisteredPayload{
		PilotID: u.ID,
		Name:    u.Name,
		Faction: string(u.Faction),
	})
	return u, nil
}

func (a *App) Login(ctx context.Context, email, password string) (session.User, bool, error) {
	return a.session.Login(ctx, email, password)
}

func (a *App) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

// PlaceOrder charges the cart against the given shipping record and emits order.placed.
func (a *App) PlaceOrder(ctx context.Context, ship checkout.ShippingDetails) (checkout.Order, error) {
	var pilotID string
	if u, ok := a.session.Current(); ok {
		pilotID = u.ID
	}
	o, err := a.checkout.PlaceOrder(ctx, pilotID, &ship)
	if err != nil {
		return checkout.Order{}, err
	}

	lines := make([]events.OrderLine, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, events.OrderLine{ProductID: it.ID, Qty: it.Quantity, PriceCents: it.EffectivePrice()})
	}
	a.publish(context.WithoutCancel(ctx), events.TopicOrderPlaced, events.EventOrderPlaced, o.ID, events.OrderPlacedPayload{
		OrderID:       o.ID,
		PilotID:       o.PilotID,
		Items:         lines,
		SubtotalCents: o.Totals.Subtotal,
		DiscountCents: o.Totals.Discount,
		TotalCents:    o.Totals.Total,
		PromoCode:     o.Totals.PromoCode,
		Colony:        o.Shipping.Colony,
	})
	return o, nil
}

// publish never fails the caller; a broken envelope is only logged.
func (a *App) publish(ctx context.Context, topic, eventType, correlationID string, payload any) {
	env, err := events.New(a.producer, eventType, correlationID, payload)
	if err != nil {
		a.log.Warn("event dropped", zap.String("topic", topic), zap.Error(err))
		return
	}
	a.pub.Publish(ctx, topic, env)
}

// ---- terminal ----

type termHost struct{ a *App }

func (h termHost) Navigate(sector string) { h.a.Navigate(View(sector)) }
func (h termHost) ToggleTheme()           { h.a.ToggleTheme() }
func (h termHost) Theme() string          { return string(h.a.Theme()) }
func (h termHost) CloseTerminal()         { h.a.SetTerminalOpen(false) }
