package http

import (
	"fmt"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toOrders(views []queries.OrderView) []servers.Order {
	response := make([]servers.Order, len(views))
	for i, v := range views {
		response[i] = toOrder(v)
	}
	return response
}

func toOrder(v queries.OrderView) servers.Order {
	o := servers.Order{
		Id:            v.ID,
		Product:       v.Product,
		Zone:          v.Zone,
		ShippingDays:  v.ShippingDays,
		CreatedAt:     v.CreatedAt,
		AgeInDays:     v.AgeInDays,
		PriorityScore: v.PriorityScore,
		Level:         servers.OrderLevel(v.Level),
		Status:        servers.OrderStatus(v.Status),
		Quantity:      v.Quantity,
	}

	if v.HandlerID != nil {
		id := openapi_types.UUID(v.HandlerID.Bytes())
		o.HandlerId = &id
	}

	if v.HandlerName != "" {
		name := v.HandlerName
		o.HandlerName = &name
	}

	return o
}

func toSeedOrders(body []servers.SeedOrder) ([]commands.SeedOrder, error) {
	seeds := make([]commands.SeedOrder, len(body))
	for i, b := range body {
		seed := commands.SeedOrder{
			ID:        b.Id,
			Product:   b.Product,
			Zone:      b.Zone,
			CreatedAt: b.CreatedAt,
			Quantity:  b.Quantity,
		}

		if b.Status != nil {
			seed.Status = string(*b.Status)
		}

		if b.HandlerId != nil {
			id, err := kernel.UUIDFromBytes(b.HandlerId[:])
			if err != nil {
				return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("orders[%d].handlerId", i), err)
			}
			seed.HandlerID = &id
		}

		seeds[i] = seed
	}

	return seeds, nil
}
