// Package analytics counts post reads without storing who read them.
package analytics

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"
)

// salt holds the per-installation random salt for visitor hashing.
var salt struct {
	mu    sync.RWMutex
	value string
}

// InitSalt loads or generates the persistent salt used by HashVisitor.
// Call it once at startup before any reads are recorded.
func InitSalt(store *Store) error {
	s, err := store.GetSetting("hash_salt")
	if err != nil {
		return fmt.Errorf("read hash salt: %w", err)
	}
	if s == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return fmt.Errorf("generate salt: %w", err)
		}
		s = hex.EncodeToString(b)
		if err := store.SetSetting("hash_salt", s); err != nil {
			return fmt.Errorf("store hash salt: %w", err)
		}
	}
	salt.mu.Lock()
	salt.value = s
	salt.mu.Unlock()
	return nil
}

func getSalt() string {
	salt.mu.RLock()
	defer salt.mu.RUnlock()
	return salt.value
}

// Read is one successful load of a post's content.
type Read struct {
	PostID    string    `json:"post_id"`
	Lang      string    `json:"lang"`
	VisitorID string    `json:"-"`
	Timestamp time.Time `json:"timestamp"`
}

// PostStat is the read tally of one post.
type PostStat struct {
	PostID   string `json:"post_id"`
	Lang     string `json:"lang"`
	Reads    int    `json:"reads"`
	Visitors int    `json:"visitors"`
}

// HashVisitor derives an anonymous visitor id from IP and User-Agent.
func HashVisitor(ip, userAgent string) string {
	h := sha256.New()
	h.Write([]byte(getSalt() + ip + "|" + userAgent))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

var botMarkers = []string{
	"bot", "crawler", "spider", "crawl", "slurp", "scrape",
	"facebookexternalhit", "headless", "curl/", "wget/",
}

// IsBot checks if the User-Agent is likely a bot or scripted client.
func IsBot(ua string) bool {
	ua = strings.ToLower(ua)
	for _, m := range botMarkers {
		if strings.Contains(ua, m) {
			return true
		}
	}
	return false
}
