package storefrontserver

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the browser session token. Sessions exist only for
// the page lifetime; a client without a token is handed a fresh one.
const SessionHeader = "X-Session-ID"

// sessionID resolves the request's session token, minting one when absent,
// and always echoes it back to the client.
func sessionID(c *gin.Context) string {
	id := strings.TrimSpace(c.GetHeader(SessionHeader))
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(SessionHeader, id)
	return id
}
