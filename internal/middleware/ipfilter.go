// SPDX-License-Identifier: MIT
package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
)

func parseCIDRs(ranges []string) []*net.IPNet {
	nets := make([]*net.IPNet, 0, len(ranges))
	for _, cidr := range ranges {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err == nil {
			nets = append(nets, ipNet)
		}
	}
	return nets
}

func containsIP(nets []*net.IPNet, ip net.IP) bool {
	for _, ipNet := range nets {
		if ipNet.Contains(ip) {
			return true
		}
	}
	return false
}

// IPFilterMiddleware blocks requests based on IP address. The blocklist
// always applies; a non-empty allowlist admits only the listed ranges.
func IPFilterMiddleware(blocklist, allowlist []string) gin.HandlerFunc {
	// Parse lists into CIDR ranges
	blocked := parseCIDRs(blocklist)
	allowed := parseCIDRs(allowlist)

	return func(c *gin.Context) {
		// Extract client IP
		clientIP := net.ParseIP(getClientIP(c))
		if clientIP == nil {
			c.AbortWithStatus(403)
			return
		}

		if containsIP(blocked, clientIP) {
			c.AbortWithStatus(403)
			return
		}

		if len(allowlist) > 0 && !containsIP(allowed, clientIP) {
			c.AbortWithStatus(403)
			return
		}

		c.Next()
	}
}
