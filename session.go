package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/caffeinepub/minecraft-rank-store/services/cart"
)

const cartSessionCookie = "cart_session"
const cartSessionKey = "cart_session_id"

// CartSession assigns each browser a session ID so it keeps the same
// in-memory cart across requests. The cookie carries nothing but the
// random ID; cart contents never leave the process.
func (s Server) CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cartSessionCookie)
		if err != nil || id == "" {
			id = s.CartService.NewSessionID()
			c.SetCookie(cartSessionCookie, id, int((30 * 24 * time.Hour).Seconds()), "/", "", false, true)
		}
		c.Set(cartSessionKey, id)
		c.Next()
	}
}

// sessionCart resolves the caller's cart. The strict handlers receive
// the gin context as a plain context.Context, so the session ID set by
// CartSession is read back through Value.
func (s Server) sessionCart(ctx context.Context) *cart.Store {
	id, _ := ctx.Value(cartSessionKey).(string)
	return s.CartService.Get(id)
}
