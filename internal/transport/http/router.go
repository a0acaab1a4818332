package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/zenbourg/agency-api/internal/application/appointment"
	"github.com/zenbourg/agency-api/internal/application/auth"
	"github.com/zenbourg/agency-api/internal/application/contact"
	"github.com/zenbourg/agency-api/internal/application/order"
	"github.com/zenbourg/agency-api/internal/application/portfolio"
	"github.com/zenbourg/agency-api/internal/application/user"
	"github.com/zenbourg/agency-api/internal/config"
	"github.com/zenbourg/agency-api/internal/domain"
	"github.com/zenbourg/agency-api/internal/transport/http/handler"
	appmiddleware "github.com/zenbourg/agency-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.JWTProvider)

	// 5 requests/second, burst of 10 — applied to the code-issuing and
	// code-verifying endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	authSvc := auth.NewService(auth.ServiceDeps{
		VerificationRepo: deps.VerificationRepo,
		UserRepo:         deps.UserRepo,
		PendingRepo:      deps.PendingUserRepo,
		Mailer:           deps.Mailer,
		Signer:           deps.JWTProvider,
	})
	userSvc := user.NewService(user.ServiceDeps{Repo: deps.UserRepo})
	apptSvc := appointment.NewService(appointment.ServiceDeps{
		Repo:       deps.AppointmentRepo,
		Mailer:     deps.Mailer,
		SMSSender:  deps.SMSSender,
		AdminEmail: cfg.AdminEmail,
	})
	contactSvc := contact.NewService(contact.ServiceDeps{
		Repo:       deps.ContactRepo,
		Mailer:     deps.Mailer,
		AdminEmail: cfg.AdminEmail,
	})
	orderSvc := order.NewService(order.ServiceDeps{
		Repo:    deps.OrderRepo,
		Gateway: deps.PaymentGateway,
		Mailer:  deps.Mailer,
	})
	portfolioSvc := portfolio.NewService(portfolio.ServiceDeps{
		Repo:   deps.PortfolioRepo,
		Images: deps.S3Store,
	})

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(userSvc)
	apptH := handler.NewAppointmentHandler(apptSvc)
	contactH := handler.NewContactHandler(contactSvc)
	orderH := handler.NewOrderHandler(orderSvc)
	portfolioH := handler.NewPortfolioHandler(portfolioSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/ping", healthH.Ping)

		r.With(sensitiveRL.Limit).Post("/auth/signup", authH.SignUp)
		r.With(sensitiveRL.Limit).Post("/auth/send-code", authH.SendCode)
		r.With(sensitiveRL.Limit).Post("/auth/verify-signup", authH.VerifySignUp)
		r.With(sensitiveRL.Limit).Post("/auth/verify-code", authH.VerifySignIn)

		r.Post("/contacts", contactH.Submit)

		r.Get("/appointments/slots", apptH.Slots)
		r.Post("/appointments", apptH.Book)

		r.Get("/portfolio", portfolioH.List)
		r.Get("/portfolio/{id}", portfolioH.Get)

		r.Post("/orders", orderH.Create)
		r.Post("/orders/{id}/pay", orderH.Pay)
		r.Get("/orders/{id}", orderH.Get)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/users/me", userH.Me)
			r.Get("/users/{id}", userH.Get)

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

				r.Get("/users", userH.List)
				r.Put("/users/role", userH.UpdateRole)

				r.Get("/appointments", apptH.List)
				r.Put("/appointments/{id}", apptH.Update)
				r.Delete("/appointments/{id}", apptH.Delete)

				r.Get("/contacts", contactH.List)
				r.Put("/contacts/{id}/status", contactH.UpdateStatus)

				r.Get("/orders", orderH.List)

				r.Post("/portfolio", portfolioH.Create)
				r.Put("/portfolio/{id}", portfolioH.Update)
				r.Delete("/portfolio/{id}", portfolioH.Delete)
				r.Post("/portfolio/{id}/image", portfolioH.UploadImage)
			})
		})
	})

	return r
}
