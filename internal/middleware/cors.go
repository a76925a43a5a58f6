package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls which browser origins may call the API.
type CORSConfig struct {
	// AllowedOrigins accepts exact origins, "*" and "*.domain" wildcards.
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string
	MaxAge         int
}

// DefaultCORSConfig allows the verbs the resource routes answer to. No origins means any origin.
func DefaultCORSConfig(origins []string) CORSConfig {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return CORSConfig{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         86400,
	}
}

type originMatcher struct {
	any      bool
	exact    map[string]struct{}
	suffixes []string
}

func newOriginMatcher(origins []string) originMatcher {
	m := originMatcher{exact: make(map[string]struct{}, len(origins))}
	for _, o := range origins {
		switch {
		case o == "*":
			m.any = true
		case strings.HasPrefix(o, "*."):
			m.suffixes = append(m.suffixes, o[1:])
		default:
			m.exact[o] = struct{}{}
		}
	}
	return m
}

func (m originMatcher) allows(origin string) bool {
	if m.any {
		return true
	}
	if _, ok := m.exact[origin]; ok {
		return true
	}
	for _, s := range m.suffixes {
		if strings.HasSuffix(origin, s) {
			return true
		}
	}
	return false
}

// CORS answers preflight requests with 204 and decorates allowed cross-origin responses.
// Requests without an Origin header pass through untouched.
func CORS(config CORSConfig) gin.HandlerFunc {
	matcher := newOriginMatcher(config.AllowedOrigins)
	methods := strings.Join(config.AllowedMethods, ", ")
	headers := strings.Join(config.AllowedHeaders, ", ")
	exposed := strings.Join(config.ExposedHeaders, ", ")
	maxAge := strconv.Itoa(config.MaxAge)

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		c.Header("Vary", "Origin")
		if !matcher.allows(origin) {
			c.Next()
			return
		}

		c.Header("Access-Control-Allow-Origin", origin)
		if exposed != "" {
			c.Header("Access-Control-Expose-Headers", exposed)
		}

		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}

		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		if config.MaxAge > 0 {
			c.Header("Access-Control-Max-Age", maxAge)
		}
		c.AbortWithStatus(http.StatusNoContent)
	}
}
