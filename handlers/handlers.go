package handlers

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"recycleshop/apperrors"
	"recycleshop/logger"
	"recycleshop/service"
	"recycleshop/session"

	"github.com/gorilla/mux"
)

//go:embed templates/*.html
var templateFS embed.FS

type contextKey string

const ctxUserID contextKey = "user_id"

// Codes carried in the dashboard redirect's error query parameter.
var flashMessages = map[string]string{
	"unknown_item":        "Item not found.",
	"insufficient_points": "Not enough points for that item.",
	"invalid_points":      "Points must be a positive whole number.",
}

type Handler struct {
	svc      service.Service
	sessions session.Manager
	tmpl     *template.Template
}

func NewHandler(svc service.Service, sessions session.Manager) Handler {
	return Handler{
		svc:      svc,
		sessions: sessions,
		tmpl:     template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Router wires the full HTTP surface. The e2e tests reuse it so the routes
// under test are the routes in production.
func (h Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.AuthPage).Methods("GET")
	r.HandleFunc("/signup", h.Signup).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/logout", h.Logout).Methods("GET")
	r.HandleFunc("/dashboard", h.RequireSession(h.Dashboard)).Methods("GET")
	r.HandleFunc("/buy", h.RequireSession(h.Buy)).Methods("POST")
	r.HandleFunc("/recycle", h.RequireSession(h.Recycle)).Methods("POST")
	return r
}

// RequireSession resolves the session cookie and passes the user identifier
// to the wrapped handler through the request context. Anonymous requests are
// redirected to the auth page, never answered with data.
func (h Handler) RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := h.sessions.CurrentUserID(r)
		if !ok {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		ctx := context.WithValue(r.Context(), ctxUserID, userID)
		next(w, r.WithContext(ctx))
	}
}

type authView struct {
	LoginError  string
	SignupError string
	ActiveTab   string
}

type dashboardView struct {
	service.DashboardData
	Flash string
}

func (h Handler) AuthPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.CurrentUserID(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	h.render(w, http.StatusOK, "auth.html", authView{ActiveTab: "login"})
}

func (h Handler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	userID := r.PostFormValue("user_id")
	name := r.PostFormValue("name")

	user, err := h.svc.SignUp(r.Context(), userID, name)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, apperrors.ErrAlreadyExists):
			msg = "userID already exists. Try logging in."
		case errors.Is(err, apperrors.ErrValidation):
			msg = "Enter a name and a userID of exactly 9 digits."
		default:
			logger.Error("signup failed", "error", err, "code", apperrors.Code(err))
			msg = "Something went wrong. Please try again."
		}
		h.render(w, http.StatusBadRequest, "auth.html", authView{
			SignupError: msg,
			ActiveTab:   "signup",
		})
		return
	}
	h.establishSession(w, r, user.UserID)
}

func (h Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	userID := r.PostFormValue("user_id")

	user, err := h.svc.Login(r.Context(), userID)
	if err != nil {
		status := http.StatusBadRequest
		var msg string
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			msg = "Invalid userID. Please enter exactly 9 digits."
		case errors.Is(err, apperrors.ErrNotFound):
			status = http.StatusNotFound
			msg = "User not found. Please check your userID or sign up."
		default:
			logger.Error("login failed", "error", err, "code", apperrors.Code(err))
			status = http.StatusInternalServerError
			msg = "Something went wrong. Please try again."
		}
		h.render(w, status, "auth.html", authView{
			LoginError: msg,
			ActiveTab:  "login",
		})
		return
	}
	h.establishSession(w, r, user.UserID)
}

func (h Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(ctxUserID).(string)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	data, err := h.svc.Dashboard(r.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Session survived the account; drop it.
			h.sessions.Clear(w)
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		logger.Error("dashboard failed", "error", err, "user_id", userID)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.render(w, http.StatusOK, "dashboard.html", dashboardView{
		DashboardData: data,
		Flash:         flashMessages[r.URL.Query().Get("error")],
	})
}

func (h Handler) Buy(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(ctxUserID).(string)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	itemName := r.PostFormValue("item_name")

	if err := h.svc.Purchase(r.Context(), userID, itemName); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientPoints):
			h.redirectWithError(w, r, "insufficient_points")
		case errors.Is(err, apperrors.ErrNotFound):
			h.redirectWithError(w, r, "unknown_item")
		default:
			logger.Error("purchase failed", "error", err, "user_id", userID, "item", itemName)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h Handler) Recycle(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(ctxUserID).(string)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	points, err := strconv.Atoi(r.PostFormValue("points"))
	if err != nil {
		h.redirectWithError(w, r, "invalid_points")
		return
	}

	if err := h.svc.Recycle(r.Context(), userID, points); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			h.redirectWithError(w, r, "invalid_points")
			return
		}
		logger.Error("recycle failed", "error", err, "user_id", userID, "points", points)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h Handler) establishSession(w http.ResponseWriter, r *http.Request, userID string) {
	if err := h.sessions.Issue(w, userID); err != nil {
		logger.Error("session issue failed", "error", err, "user_id", userID)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h Handler) redirectWithError(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, "/dashboard?error="+code, http.StatusFound)
}

func (h Handler) render(w http.ResponseWriter, status int, name string, view interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tmpl.ExecuteTemplate(w, name, view); err != nil {
		logger.Error("template render failed", "error", err, "template", name)
	}
}
