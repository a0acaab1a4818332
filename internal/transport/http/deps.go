package http

import (
	"github.com/zenbourg/agency-api/internal/application/order"
	"github.com/zenbourg/agency-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/zenbourg/agency-api/internal/infrastructure/jwt"
	s3infra "github.com/zenbourg/agency-api/internal/infrastructure/s3"
	"github.com/zenbourg/agency-api/internal/infrastructure/smtp"
	"github.com/zenbourg/agency-api/internal/infrastructure/sns"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo         *dynamo.UserRepo
	PendingUserRepo  *dynamo.PendingUserRepo
	VerificationRepo *dynamo.VerificationRepo
	AppointmentRepo  *dynamo.AppointmentRepo
	ContactRepo      *dynamo.ContactRepo
	OrderRepo        *dynamo.OrderRepo
	PortfolioRepo    *dynamo.PortfolioRepo
	S3Store          *s3infra.Store
	Mailer           smtp.Mailer
	SMSSender        sns.SMSSender
	PaymentGateway   order.Gateway
	JWTProvider      *jwtinfra.Provider
}
