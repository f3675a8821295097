// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// RequireToken authorizes admin requests with a bearer token. When a
// bcrypt hash is configured the presented token is verified against it;
// otherwise the plain token is compared in constant time. With neither
// configured every request is rejected.
func RequireToken(plainToken, tokenHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok || !tokenValid(token, plainToken, tokenHash) {
				w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer ..." header.
func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return "", false
	}
	return auth[len(prefix):], true
}

func tokenValid(token, plainToken, tokenHash string) bool {
	if tokenHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(token)) == nil
	}
	if plainToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(plainToken)) == 1
}
