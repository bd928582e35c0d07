package controllers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	apperrors "sportsstore-service/common/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartCookieName holds the session id that keys the stored cart.
const CartCookieName = "sportsstore_cart"

const cartCookieMaxAge = 7 * 24 * 60 * 60

// sessionID returns the cart session for the request, issuing a new cookie
// when the client has none.
func sessionID(c *gin.Context) string {
	if id, err := c.Cookie(CartCookieName); err == nil {
		if _, perr := uuid.Parse(id); perr == nil {
			return id
		}
	}
	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CartCookieName, id, cartCookieMaxAge, "/", "", false, true)
	return id
}

func parseID(c *gin.Context, param string) (int64, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		_ = c.Error(apperrors.Withf(apperrors.ErrInvalidInput, "invalid product id %q", raw))
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}

// safeReturnURL keeps return URLs on this site.
func safeReturnURL(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return "/"
	}
	return raw
}

func cartRedirect(returnURL string) string {
	return "/cart?returnUrl=" + url.QueryEscape(safeReturnURL(returnURL))
}
