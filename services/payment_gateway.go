package services

import (
	"foodway-backend/entity"
)

// PaymentGateway charges an order. A transport failure from the provider is
// treated the same as a declined charge by callers.
type PaymentGateway interface {
	Execute(order *entity.Order) (bool, error)
}

// SandboxGateway approves every well-formed charge; it stands in until the
// real provider integration lands.
type SandboxGateway struct{}

func (SandboxGateway) Execute(order *entity.Order) (bool, error) {
	if order.Total <= 0 {
		return false, nil
	}
	return true, nil
}
