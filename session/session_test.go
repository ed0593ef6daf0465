package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recycleshop/session"

	"github.com/stretchr/testify/require"
)

func cookieRequest(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest("GET", "/dashboard", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestManager_RoundTrip(t *testing.T) {
	m := session.NewManager("secret", time.Hour)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec, "100000001"))

	userID, ok := m.CurrentUserID(cookieRequest(t, rec))
	require.True(t, ok)
	require.Equal(t, "100000001", userID)
}

func TestManager_NoCookie(t *testing.T) {
	m := session.NewManager("secret", time.Hour)

	_, ok := m.CurrentUserID(httptest.NewRequest("GET", "/dashboard", nil))
	require.False(t, ok)
}

func TestManager_TamperedCookie(t *testing.T) {
	m := session.NewManager("secret", time.Hour)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec, "100000001"))

	req := httptest.NewRequest("GET", "/dashboard", nil)
	for _, c := range rec.Result().Cookies() {
		c.Value += "x"
		req.AddCookie(c)
	}
	_, ok := m.CurrentUserID(req)
	require.False(t, ok)
}

func TestManager_WrongSecret(t *testing.T) {
	issuer := session.NewManager("secret", time.Hour)
	verifier := session.NewManager("other-secret", time.Hour)

	rec := httptest.NewRecorder()
	require.NoError(t, issuer.Issue(rec, "100000001"))

	_, ok := verifier.CurrentUserID(cookieRequest(t, rec))
	require.False(t, ok)
}

func TestManager_ExpiredSession(t *testing.T) {
	m := session.NewManager("secret", -time.Minute)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec, "100000001"))

	req := httptest.NewRequest("GET", "/dashboard", nil)
	// Re-add the cookie manually: the recorder's cookie is already expired,
	// so Result().Cookies() round-tripping would drop it in a real jar.
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	_, ok := m.CurrentUserID(req)
	require.False(t, ok)
}

func TestManager_Clear(t *testing.T) {
	m := session.NewManager("secret", time.Hour)

	rec := httptest.NewRecorder()
	m.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Empty(t, cookies[0].Value)
	require.Negative(t, cookies[0].MaxAge)
}
