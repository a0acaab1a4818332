package payments

import (
	"context"

	"github.com/zenbourg/agency-api/internal/application/order"
	"github.com/zenbourg/agency-api/internal/domain"
	"github.com/zenbourg/agency-api/internal/pkg/id"
)

// SimulatedGateway stands in for a real payment provider. Every charge
// succeeds and gets a synthetic transaction id.
type SimulatedGateway struct{}

var _ order.Gateway = (*SimulatedGateway)(nil)

func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{}
}

func (g *SimulatedGateway) Charge(_ context.Context, _ *domain.PaymentOrder, _ string) (string, error) {
	return "TXN-" + id.New(), nil
}
