// session.go
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/touseef7878/PRODIGY-FS-03/internal/session"
)

const SessionKey = "session"

// WithSession resuelve la sesión del header X-Session-ID (o crea una nueva)
// y la guarda en el contexto. El id resuelto vuelve en el mismo header.
func WithSession(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := mgr.Get(c.GetHeader("X-Session-ID"))
		c.Set(SessionKey, s)
		c.Header("X-Session-ID", s.ID)
		c.Next()
	}
}

// CurrentSession lee la sesión puesta por WithSession.
func CurrentSession(c *gin.Context) *session.Session {
	return c.MustGet(SessionKey).(*session.Session)
}
