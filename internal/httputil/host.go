package httputil

import "github.com/gin-gonic/gin"

// RequestHost reconstructs the outside-facing base URL of the request.
//
// The scheme defaults to http and is upgraded when a reverse proxy
// sets x-forwarded-proto. If x-forwarded-host is present, it is used
// together with x-forwarded-prefix (falling back to "/api") to build
// the links; without a proxy the request host is used as-is.
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	host := c.Request.Host
	var forwardedPrefix string

	xForwardedHost := c.Request.Header.Get("x-forwarded-host")
	if xForwardedHost != "" {
		host = xForwardedHost

		forwardedPrefix = c.Request.Header.Get("x-forwarded-prefix")
		if forwardedPrefix == "" {
			forwardedPrefix = "/api"
		}
	}

	return scheme + "://" + host + forwardedPrefix
}

// RequestPathV1 returns the URL with the prefix for API v1.
func RequestPathV1(c *gin.Context) string {
	return RequestHost(c) + "/v1"
}
