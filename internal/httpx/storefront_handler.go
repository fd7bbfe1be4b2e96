package httpx

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ariefcatur/gunpla-storefront/internal/apperr"
	"github.com/ariefcatur/gunpla-storefront/internal/cart"
	"github.com/ariefcatur/gunpla-storefront/internal/catalog"
	"github.com/ariefcatur/gunpla-storefront/internal/checkout"
	"github.com/ariefcatur/gunpla-storefront/internal/exchange"
	"github.com/ariefcatur/gunpla-storefront/internal/session"
	"github.com/ariefcatur/gunpla-storefront/internal/storefront"
)

// StorefrontHandler exposes one logical storefront session over JSON.
type StorefrontHandler struct {
	App *storefront.App
	Log *zap.Logger
}

type addItemReq struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type deltaReq struct {
	Delta int `json:"delta"`
}

type promoReq struct {
	Code string `json:"code"`
}

type commentReq struct {
	Text string `json:"text"`
}

type statusReq struct {
	Status exchange.Status `json:"status"`
}

type viewReq struct {
	View         *string `json:"view"`
	Theme        *string `json:"theme"`
	CartOpen     *bool   `json:"cart_open"`
	TerminalOpen *bool   `json:"terminal_open"`
	Selected     *string `json:"selected"`
}

type terminalReq struct {
	Input string `json:"input"`
}

type cartResp struct {
	Items  []cart.Item `json:"items"`
	Totals cart.Totals `json:"totals"`
}

type dealsResp struct {
	Products         []catalog.Product `json:"products"`
	RemainingSeconds int64             `json:"remaining_seconds"`
}

type wishlistResp struct {
	Products   []catalog.Product `json:"products"`
	TotalCents int64             `json:"total_cents"`
}

func (h *StorefrontHandler) Register(r chi.Router) {
	r.Get("/products", h.listProducts)
	r.Get("/products/{id}", h.getProduct)
	r.Get("/deals", h.deals)

	r.Get("/cart", h.getCart)
	r.Post("/cart/items", h.addItem)
	r.Patch("/cart/items/{id}", h.updateItem)
	r.Delete("/cart/items/{id}", h.removeItem)
	r.Post("/cart/promo", h.applyPromo)

	r.Get("/wishlist", h.getWishlist)
	r.Post("/wishlist/{id}/toggle", h.toggleWishlist)

	r.Get("/exchange", h.listPosts)
	r.Post("/exchange", h.createPost)
	r.Get("/exchange/{id}", h.getPost)
	r.Post("/exchange/{id}/comments", h.addComment)
	r.Patch("/exchange/{id}/status", h.setStatus)

	r.Post("/auth/register", h.register)
	r.Post("/auth/login", h.login)
	r.Post("/auth/logout", h.logout)
	r.Get("/auth/me", h.me)

	r.Get("/view", h.getView)
	r.Post("/view", h.setView)
	r.Post("/terminal", h.terminal)
	r.Post("/checkout", h.checkout)
}

// ---- catalog ----

// anyFilter treats "", "all" and "any" as an unset filter.
func anyFilter(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "all", "any":
		return ""
	}
	return strings.TrimSpace(v)
}

func (h *StorefrontHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c := catalog.Criteria{
		Query:  q.Get("q"),
		Grade:  catalog.Grade(anyFilter(q.Get("grade"))),
		Series: catalog.Series(anyFilter(q.Get("series"))),
	}
	writeJSON(w, http.StatusOK, catalog.Filter(h.App.Catalog().All(), c))
}

func (h *StorefrontHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := h.App.Catalog().Get(chi.URLParam(r, "id"))
	if !ok {
		writeMsg(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *StorefrontHandler) deals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dealsResp{
		Products:         h.App.Catalog().Sale(),
		RemainingSeconds: int64(h.App.Deals().Remaining().Seconds()),
	})
}

// ---- cart ----

func (h *StorefrontHandler) cartBody() cartResp {
	c := h.App.Cart()
	return cartResp{Items: c.Items(), Totals: c.Totals()}
}

func (h *StorefrontHandler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartBody())
}

func (h *StorefrontHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemReq
	if !decode(r, &req) {
		writeMsg(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if err := h.App.AddToCart(req.ProductID, req.Quantity); err != nil {
		writeErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.cartBody())
}

func (h *StorefrontHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	var req deltaReq
	if !decode(r, &req) {
		writeMsg(w, http.StatusBadRequest, "invalid json")
		return
	}
	h.App.Cart().UpdateQuantity(chi.URLParam(r, "id"), req.Delta)
	writeJSON(w, http.StatusOK, h.cartBody())
}

func (h *StorefrontHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	h.App.Cart().Remove(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, h.cartBody())
}

// applyPromo answers 422 for an unknown code; the body still carries the unchanged totals.
func (h *StorefrontHandler) applyPromo(w http.ResponseWriter, r *http.Request) {
	var req promoReq
	if !decode(r, &req) {
		writeMsg(w, http.StatusBadRequest, "invalid json")
		return
	}
	err := h.App.Cart().ApplyPromo(req.Code)
	switch {
	case errors.Is(err, cart.ErrInvalidPromo):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"error": err.Error(), "totals": h.App.Cart().Totals()})
	case err != nil:
		writeErr(w, h.Log, err)
	default:
		writeJSON(w, http.StatusOK, h.cartBody())
	}
}

// ---- wishlist ----

func (h *StorefrontHandler) getWishlist(w http.ResponseWriter, r *http.Request) {
	wl, cat := h.App.Wishlist(), h.App.Catalog()
	writeJSON(w, http.StatusOK, wishlistResp{Products: wl.List(cat), TotalCents: wl.TotalValue(cat)})
}

func (h *StorefrontHandler) toggleWishlist(w http.ResponseWriter, r *http.Request) {
	on, err := h.App.ToggleWishlist(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"wishlisted": on})
}

// ---- exchange ----

func (h *StorefrontHandler) listPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.App.Board().Search(r.URL.Query().Get("q")))
}

func (h *StorefrontHandler) createPost(w http.ResponseWriter, r *http.Request) {
	var f exchange.PostForm
	if !decode(r, &f) {
		writeMsg(w, http.StatusBadRequest, "invalid json")
		return
	}
	p, err := h.App.CreatePost(r.Context(), f)
	if err != nil {
		writeErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *StorefrontHandler) getPost(w http.ResponseWriter, r *http.Request) {
	p, ok := h.App.Board().Get(chi.URLParam(r, "id"))
	if !ok {
		writeMsg(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// addComment answers 204 when the board ignored the comment (blank text, or unknown post in lenient mode).
func (h *StorefrontHandler) addComment(w http.ResponseWriter, r *http.Request) {
	var req commentReq
	if !decode(r, &req) {
		writeMsg(w, http.StatusBadRequest, "invalid json")
		return
	}
	c, err := h.App.AddComment(r.Context(), chi.URLParam(r, "id"), req.Text)
	if err != nil {
		writeErr(w, h.Log, err)
		return
	}
	if c == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *StorefrontHandler) setStatus(w http.ResponseWriter, r *http.Request) {
	var req statusReq
	if !decode(r, &req) {
		writeMsg(w, http.StatusBadRequest, "invalid json")
		return
	}
	p, err := h.App.SetPostStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ---- auth ----

func (h *StorefrontHandler) register(w http.ResponseWriter, r *http.Request) {
	var f session.RegisterForm
	if !decode(r, &f) {
		writeMsg(w, http.StatusBadRequest, "invalid json")
		return
	}
	u, err := h.App.Register(r.Context(), f)
	if err != nil {
		writeErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *StorefrontHandler) login(w http.ResponseWriter, r *http.Request) {
	var f session.LoginForm
	if !decode(r, &f) {
		writeMsg(w, http.StatusBadRequest, "invalid json")
		return
	}
	// form kosong ditolak sebelum simulasi delay
	if err := apperr.Struct(f); err != nil {
		writeErr(w, h.Log, err)
		return
	}
	u, ok, err := h.App.Login(r.Context(), f.Email, f.Password)
	switch {
	case err != nil:
		writeErr(w, h.Log, err)
	case !ok:
		writeMsg(w, http.StatusUnauthorized, session.MsgAccessDenied)
	default:
		writeJSON(w, http.StatusOK, u)
	}
}

func (h *StorefrontHandler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.App.Logout(r.Context()); err != nil {
		writeErr(w, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StorefrontHandler) me(w http.ResponseWriter, r *http.Request) {
	u, ok := h.App.Session().Current()
	if !ok {
		writeMsg(w, http.StatusUnauthorized, "not signed in")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// ---- view / terminal / checkout ----

func (h *StorefrontHandler) getView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.App.Snapshot())
}

// setView applies only the fields present. Unknown view names are stored
// as-is and render as the shop.
func (h *StorefrontHandler) setView(w http.ResponseWriter, r *http.Request) {
	var req viewReq
	if !decode(r, &req) {
		writeMsg(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Theme != nil {
		if strings.EqualFold(strings.TrimSpace(*req.Theme), "toggle") {
			h.App.ToggleTheme()
		} else if t, ok := storefront.ParseTheme(*req.Theme); ok {
			h.App.SetTheme(t)
		} else {
			writeMsg(w, http.StatusBadRequest, "theme must be one of: EFSF ZEON toggle")
			return
		}
	}
	if req.Selected != nil {
		if err := h.App.SelectProduct(*req.Selected); err != nil {
			writeErr(w, h.Log, err)
			return
		}
	}
	if req.View != nil {
		v, _ := storefront.ParseView(*req.View)
		if v == storefront.ViewCheckout {
			h.App.OpenCheckout()
		} else {
			h.App.Navigate(v)
		}
	}
	if req.CartOpen != nil {
		h.App.SetCartOpen(*req.CartOpen)
	}
	if req.TerminalOpen != nil {
		h.App.SetTerminalOpen(*req.TerminalOpen)
	}
	writeJSON(w, http.StatusOK, h.App.Snapshot())
}

func (h *StorefrontHandler) terminal(w http.ResponseWriter, r *http.Request) {
	var req terminalReq
	if !decode(r, &req) {
		writeMsg(w, http.StatusBadRequest, "invalid json")
		return
	}
	out := h.App.Terminal().Exec(req.Input)
	writeJSON(w, http.StatusOK, map[string]any{
		"output":  out,
		"history": h.App.Terminal().History(),
		"view":    h.App.Snapshot(),
	})
}

func (h *StorefrontHandler) checkout(w http.ResponseWriter, r *http.Request) {
	var d checkout.ShippingDetails
	if !decode(r, &d) {
		writeMsg(w, http.StatusBadRequest, "invalid json")
		return
	}
	o, err := h.App.PlaceOrder(r.Context(), d)
	if err != nil {
		writeErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}
