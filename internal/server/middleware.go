package server

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/blake2b"
)

// visitorHasher turns client IPs into short keyed digests so visits can
// be correlated in logs without recording the address.
type visitorHasher struct {
	key []byte
}

// newVisitorHasher generates a fresh per-process key; digests do not
// survive a restart.
func newVisitorHasher() (*visitorHasher, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generating visitor hash key: %w", err)
	}
	return &visitorHasher{key: key}, nil
}

func (h *visitorHasher) hash(ip string) string {
	mac, err := blake2b.New256(h.key)
	if err != nil {
		// Only possible with a key longer than 64 bytes.
		panic(err)
	}
	mac.Write([]byte(ip))
	return hex.EncodeToString(mac.Sum(nil))[:16]
}

var untrackedPrefixes = []string{
	"/static/",
	"/favicon",
	"/healthz",
	"/ws/",
}

// Privacy-conscious visitor logging middleware
func (s *Server) visitorLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		visitor := s.visitors.hash(c.ClientIP())
		c.Next()
		log.Printf("server: visit %s %s %d visitor=%s", c.Request.Method, path, c.Writer.Status(), visitor)
	}
}
