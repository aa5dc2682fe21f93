package auth

import (
	"net/http"
	"os"
	"time"
)

func cookieDomain() string {
	if d := os.Getenv("COOKIE_DOMAIN"); d != "" {
		return d
	}
	return ".avaliapro.app"
}

func SetSessionCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    accessToken,
		Path:     "/",
		Domain:   cookieDomain(),
		Expires:  time.Now().Add(AccessTokenDuration),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Path:     "/auth/refresh",
		Domain:   cookieDomain(),
		Expires:  time.Now().Add(RefreshTokenDuration),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
