package handlers

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/thanwa-dev/priceboard/internal/auth"
	"github.com/thanwa-dev/priceboard/internal/csrf"
	"github.com/thanwa-dev/priceboard/internal/currency"
	"github.com/thanwa-dev/priceboard/internal/metrics"
	"github.com/thanwa-dev/priceboard/internal/repo"
	"github.com/thanwa-dev/priceboard/internal/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

var (
	loginTmpl  = template.Must(template.ParseFS(templatesFS, "templates/base.html", "templates/login.html"))
	pricesTmpl = template.Must(template.ParseFS(templatesFS, "templates/base.html", "templates/prices.html"))
)

// ==========================
// Admin Console Handler
// ==========================
// One GET renders the current state (login form or update form); one POST
// dispatches exactly one of four actions keyed by the submitted field name,
// behind a CSRF gate that runs before any action handler.
type AdminHandler struct {
	Prices   *repo.PriceRepo
	Admins   *repo.AdminRepo
	Sessions *session.Manager

	// RateTHB is the static USD->THB display rate, shared with the feed.
	RateTHB float64
}

type consolePage struct {
	Token    string
	Error    string
	Message  string
	Username string

	// Stored (reference currency) values and their THB mirrors.
	RAMPrice    float64
	CPUPrice    float64
	RAMPriceTHB float64
	CPUPriceTHB float64
	RateTHB     float64
}

// ==========================
// GET /admin
// ==========================
func (h *AdminHandler) Show(w http.ResponseWriter, r *http.Request) {
	token, err := h.Sessions.EnsureCSRFToken(w, r)
	if err != nil {
		slog.Error("console: issue csrf token", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	page := consolePage{
		Token:   token,
		Error:   r.URL.Query().Get("error"),
		Message: r.URL.Query().Get("msg"),
	}

	if !h.Sessions.IsLoggedIn(r) {
		renderPage(w, loginTmpl, page)
		return
	}

	rec, err := h.Prices.LatestOrDefault(r.Context())
	if err != nil {
		// Connection failure is fatal to the request; no stale view.
		slog.Error("console: load current prices", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	page.Username = h.Sessions.AdminUsername(r)
	page.RAMPrice = rec.RAMPrice
	page.CPUPrice = rec.CPUPrice
	page.RAMPriceTHB = currency.ToTHB(rec.RAMPrice, h.RateTHB)
	page.CPUPriceTHB = currency.ToTHB(rec.CPUPrice, h.RateTHB)
	page.RateTHB = h.RateTHB

	renderPage(w, pricesTmpl, page)
}

// ==========================
// POST /admin
// ==========================
// The CSRF gate runs first for every action, session reset included. Any
// gate failure terminates the request with one fixed message before a
// handler runs; the three causes are only distinguished in the log.
func (h *AdminHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form submission", http.StatusBadRequest)
		return
	}

	if err := csrf.Verify(r.PostFormValue("csrf_token"), h.Sessions.CSRFToken(r)); err != nil {
		slog.Warn("console: csrf rejected",
			"detail", err,
			"remote", r.RemoteAddr)
		http.Error(w, msgCSRFRejected, http.StatusForbidden)
		return
	}

	switch {
	case r.PostForm.Has("login"):
		h.login(w, r)
	case r.PostForm.Has("update_prices"):
		h.updatePrices(w, r)
	case r.PostForm.Has("logout"):
		h.logout(w, r)
	case r.PostForm.Has("reset_session"):
		h.resetSession(w, r)
	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
	}
}

func (h *AdminHandler) login(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	admin, err := auth.Authenticate(r.Context(), h.Admins, username, password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		// Unknown username and bad password are logged apart but surfaced
		// identically, so responses never confirm that a username exists.
		slog.Warn("console: login rejected", "username", username, "detail", err)
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		redirectError(w, r, msgInvalidCredentials)
		return
	}
	if err != nil {
		slog.Error("console: login lookup", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.Sessions.Login(w, r, admin); err != nil {
		slog.Error("console: save session", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	slog.Info("console: admin logged in", "admin_id", admin.ID, "username", admin.Username)
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AdminHandler) updatePrices(w http.ResponseWriter, r *http.Request) {
	if !h.Sessions.IsLoggedIn(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	// Malformed numbers coerce to 0; range enforcement is the form's job.
	ramPrice := floatOrZero(r.PostFormValue("ram_price"))
	cpuPrice := floatOrZero(r.PostFormValue("cpu_price"))

	// Sliders submit in the selected display currency. Prices are persisted
	// in the reference currency only, so THB input converts back first.
	if r.PostFormValue("currency") == "THB" {
		ramPrice = currency.ToUSD(ramPrice, h.RateTHB)
		cpuPrice = currency.ToUSD(cpuPrice, h.RateTHB)
	}

	rec, err := h.Prices.Insert(r.Context(), ramPrice, cpuPrice)
	if err != nil {
		slog.Error("console: insert price record", "err", err)
		redirectError(w, r, msgUpdateFailed)
		return
	}

	slog.Info("console: prices updated",
		"record_id", rec.ID,
		"ram_price", rec.RAMPrice,
		"cpu_price", rec.CPUPrice,
		"admin", h.Sessions.AdminUsername(r))
	metrics.PriceUpdatesTotal.Inc()
	http.Redirect(w, r, "/admin?msg="+url.QueryEscape(msgUpdateOK), http.StatusSeeOther)
}

func (h *AdminHandler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Logout(w, r); err != nil {
		slog.Error("console: clear session", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AdminHandler) resetSession(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Sessions.Reset(w, r); err != nil {
		slog.Error("console: reset session", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func renderPage(w http.ResponseWriter, tmpl *template.Template, page consolePage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base", page); err != nil {
		slog.Error("console: render template", "err", err)
	}
}

func redirectError(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/admin?error="+url.QueryEscape(msg), http.StatusSeeOther)
}

func floatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
