package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"galaticketing/internal/delivery/http/controllers"
	"galaticketing/internal/delivery/http/helpers"
	"galaticketing/internal/delivery/http/middleware"
	"galaticketing/internal/domain"
)

// HealthChecker reports whether a backing dependency is reachable. *sql.DB satisfies it.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Graduate *controllers.GraduateController
	Payment  *controllers.PaymentController
	Ticket   *controllers.TicketController
	Staff    *controllers.StaffController
	Scan     *controllers.ScanController
	Debug    *controllers.DebugController
}

// RouterConfig carries the cross-cutting dependencies of the router.
type RouterConfig struct {
	Logger             *slog.Logger
	Verifier           domain.TokenVerifier
	Health             HealthChecker
	DebugEndpoints     bool
	LoginRatePerMinute int
	// Proxies decides whose X-Forwarded-For is believed when keying the rate limiter.
	Proxies *middleware.ProxyTrust
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers, cfg RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	admin := middleware.RequireRole(cfg.Verifier, cfg.Logger, domain.RoleAdmin)
	staff := middleware.RequireRole(cfg.Verifier, cfg.Logger, domain.RoleAdmin, domain.RoleDelegate)
	limiter := middleware.NewRateLimiter(cfg.LoginRatePerMinute, cfg.Proxies)

	// Graduates and guests
	mux.HandleFunc("POST /api/graduate/check", limiter.Limit(c.Graduate.Check))
	mux.HandleFunc("GET /api/graduate/{id}/guests", c.Graduate.Guests)
	mux.HandleFunc("POST /api/guest/check-code", limiter.Limit(c.Graduate.CheckCode))

	// Payment
	mux.HandleFunc("POST /api/payment/init", c.Payment.Init)
	mux.HandleFunc("POST /api/payment/webhook", c.Payment.Webhook)

	// Tickets
	mux.HandleFunc("GET /api/orders/{orderID}/ticket", c.Ticket.GetByOrder)
	mux.HandleFunc("GET /api/tickets/{uuid}", c.Ticket.Get)
	mux.HandleFunc("GET /api/tickets/{uuid}/qr", c.Ticket.QR)

	// Staff
	mux.HandleFunc("POST /api/staff/login", limiter.Limit(c.Staff.Login))
	mux.HandleFunc("GET /api/admin/stats", admin(c.Staff.GetStats))
	mux.HandleFunc("GET /api/admin/graduates", staff(c.Graduate.List))
	mux.HandleFunc("POST /api/admin/graduates", staff(c.Graduate.Create))
	mux.HandleFunc("DELETE /api/admin/graduates/{id}", admin(c.Graduate.Delete))
	mux.HandleFunc("GET /api/admin/tickets", admin(c.Ticket.ListLatest))
	mux.HandleFunc("POST /api/admin/scan", staff(c.Scan.Scan))

	if cfg.DebugEndpoints && c.Debug != nil {
		mux.HandleFunc("POST /api/debug/bypass-payment", admin(c.Debug.BypassPayment))
		mux.HandleFunc("POST /api/debug/test-email", admin(c.Debug.TestEmail))
	}

	mux.HandleFunc("GET /healthz", healthz(cfg.Health))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// HealthStatus is the body of GET /healthz.
type HealthStatus struct {
	Status string `json:"status"`
}

func healthz(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checker != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := checker.PingContext(ctx); err != nil {
				helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable, "database unreachable")
				return
			}
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, HealthStatus{Status: "ok"})
	}
}
