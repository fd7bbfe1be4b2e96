package storefront

import "strings"

type View string

const (
	ViewHome     View = "HOME"
	ViewShop     View = "SHOP"
	ViewExchange View = "EXCHANGE"
	ViewDeals    View = "DEALS"
	ViewContact  View = "CONTACT"
	ViewWishlist View = "WISHLIST"
	ViewCheckout View = "CHECKOUT"
	ViewPilot    View = "PILOT"
	ViewLogin    View = "LOGIN"
	ViewRegister View = "REGISTER"
)

// screens is the render dispatch table. Anything missing renders the shop.
var screens = map[View]struct{}{
	ViewHome: {}, ViewShop: {}, ViewExchange: {}, ViewDeals: {}, ViewContact: {},
	ViewWishlist: {}, ViewCheckout: {}, ViewPilot: {}, ViewLogin: {}, ViewRegister: {},
}

// ParseView accepts any casing; ok is false for names outside the table.
func ParseView(s string) (View, bool) {
	v := View(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := screens[v]
	return v, ok
}

type Theme string

const (
	ThemeEFSF Theme = "EFSF"
	ThemeZEON Theme = "ZEON"
)

func ParseTheme(s string) (Theme, bool) {
	switch t := Theme(strings.ToUpper(strings.TrimSpace(s))); t {
	case ThemeEFSF, ThemeZEON:
		return t, true
	}
	return "", false
}

func (t Theme) toggled() Theme {
	if t == ThemeZEON {
		return ThemeEFSF
	}
	return ThemeZEON
}
