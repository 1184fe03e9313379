// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// securityHeaders are set on every response. The site serves a JSON API
// and public images, so the set is small: no inline documents means no CSP
// to maintain here — that belongs to the frontend.
var securityHeaders = map[string]string{
	// Prevent the browser from MIME-sniffing the Content-Type.
	"X-Content-Type-Options": "nosniff",
	// Prevent embedding in iframes from other origins (clickjacking).
	"X-Frame-Options": "SAMEORIGIN",
	// Control what information is sent in the Referer header.
	"Referrer-Policy": "strict-origin-when-cross-origin",
}

// SecureHeaders adds the baseline security headers to every response.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for name, value := range securityHeaders {
			h.Set(name, value)
		}
		next.ServeHTTP(w, r)
	})
}
