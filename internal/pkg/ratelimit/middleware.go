package ratelimit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func reject(c *gin.Context, limiter *RateLimiter, key string) {
	resetTime := limiter.ResetTime(key)

	c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
	c.Header("X-RateLimit-Remaining", "0")
	c.Header("X-RateLimit-Reset", resetTime.Format(time.RFC3339))
	c.Header("Retry-After", strconv.Itoa(int(time.Until(resetTime).Seconds())+1))

	c.JSON(http.StatusTooManyRequests, gin.H{
		"error":      "Rate limit exceeded. Try again later.",
		"reset_time": resetTime.Format(time.RFC3339),
		"limit":      limiter.Limit(),
	})
	c.Abort()
}

// Middleware limits requests per client IP
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		if !limiter.Allow(key) {
			reject(c, limiter, key)
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.Remaining(key)))
		c.Next()
	}
}

// UserBasedMiddleware limits requests per authenticated user, falling
// back to the client IP for anonymous requests
func UserBasedMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString("userID")
		if key == "" {
			key = c.ClientIP()
		}

		if !limiter.Allow(key) {
			reject(c, limiter, key)
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.Remaining(key)))
		c.Next()
	}
}
