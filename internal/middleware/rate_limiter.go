package middleware

import (
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RateLimiter is a fixed-window in-memory limiter keyed separately by
// authenticated user and by client IP.
type RateLimiter struct {
	userLimits map[uint]*window
	ipLimits   map[string]*window
	mu         sync.Mutex

	userMaxRequests int
	ipMaxRequests   int
	windowSize      time.Duration
}

type window struct {
	requests  int
	resetTime time.Time
}

func NewRateLimiter(userMaxRequests, ipMaxRequests int, windowSize time.Duration) *RateLimiter {
	rl := &RateLimiter{
		userLimits:      make(map[uint]*window),
		ipLimits:        make(map[string]*window),
		userMaxRequests: userMaxRequests,
		ipMaxRequests:   ipMaxRequests,
		windowSize:      windowSize,
	}

	go rl.cleanup()

	return rl
}

// AllowUser records a request for the user and reports whether it is
// within the limit.
func (rl *RateLimiter) AllowUser(userID uint) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, exists := rl.userLimits[userID]
	if !exists || now.After(w.resetTime) {
		rl.userLimits[userID] = &window{requests: 1, resetTime: now.Add(rl.windowSize)}
		return true
	}

	if w.requests >= rl.userMaxRequests {
		return false
	}

	w.requests++
	return true
}

// AllowIP records a request for the client address and reports whether
// it is within the limit.
func (rl *RateLimiter) AllowIP(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, exists := rl.ipLimits[ip]
	if !exists || now.After(w.resetTime) {
		rl.ipLimits[ip] = &window{requests: 1, resetTime: now.Add(rl.windowSize)}
		return true
	}

	if w.requests >= rl.ipMaxRequests {
		return false
	}

	w.requests++
	return true
}

// IPHandler limits by client address. It runs before authentication so
// it covers login and register too.
func (rl *RateLimiter) IPHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rl.AllowIP(c.IP()) {
			return tooManyRequests(c, "too many requests from this address")
		}
		return c.Next()
	}
}

// UserHandler limits by authenticated user. It must run after the JWT
// middleware has populated user_id.
func (rl *RateLimiter) UserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID, ok := c.Locals("user_id").(uint); ok {
			if !rl.AllowUser(userID) {
				return tooManyRequests(c, fmt.Sprintf("rate limit of %d requests exceeded", rl.userMaxRequests))
			}
		}
		return c.Next()
	}
}

func tooManyRequests(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"error":   nil,
		"data":    nil,
	})
}

// cleanup drops expired windows so idle keys don't accumulate.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for userID, w := range rl.userLimits {
			if now.After(w.resetTime) {
				delete(rl.userLimits, userID)
			}
		}
		for ip, w := range rl.ipLimits {
			if now.After(w.resetTime) {
				delete(rl.ipLimits, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Reset clears all windows.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.userLimits = make(map[uint]*window)
	rl.ipLimits = make(map[string]*window)
}
