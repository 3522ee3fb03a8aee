package middleware

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// OriginPolicy is the live CORS allow-list: the configured origins plus
// whatever the CORS setting adds. Reload swaps the extra set atomically.
type OriginPolicy struct {
	mu      sync.RWMutex
	static  []string
	allowed map[string]struct{}
}

func NewOriginPolicy(static []string) *OriginPolicy {
	p := &OriginPolicy{static: static}
	p.Reload(nil)
	return p
}

func normalizeOrigin(origin string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(origin)), "/")
}

func (p *OriginPolicy) Reload(extra []string) {
	allowed := make(map[string]struct{}, len(p.static)+len(extra))
	for _, list := range [][]string{p.static, extra} {
		for _, origin := range list {
			if o := normalizeOrigin(origin); o != "" {
				allowed[o] = struct{}{}
			}
		}
	}

	p.mu.Lock()
	p.allowed = allowed
	p.mu.Unlock()
}

func (p *OriginPolicy) Allow(origin string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.allowed[normalizeOrigin(origin)]
	return ok
}

// Origins returns the effective allow-list, sorted.
func (p *OriginPolicy) Origins() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, 0, len(p.allowed))
	for o := range p.allowed {
		out = append(out, o)
	}
	sort.Strings(out)
	return out
}

func CORS(policy *OriginPolicy) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc:  policy.Allow,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
