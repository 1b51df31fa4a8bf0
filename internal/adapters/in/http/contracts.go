package http

import (
	"cafe/internal/core/application/usecases/queries"
	"cafe/internal/core/domain/model/order"
)

// Error is the JSON error payload returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineRequest is one requested order line: an item and a quantity.
type LineRequest struct {
	ItemID string `json:"itemId"`
	Amount int    `json:"amount"`
}

// NewOrderRequest is the body of POST /api/v1/orders.
// The order is placed for the authenticated caller; the name comes from
// the identity headers, not the body.
type NewOrderRequest struct {
	Lines []LineRequest `json:"lines"`
	Tip   float64       `json:"tip"`
}

// UpdateOrderRequest is the body of PUT /api/v1/orders/:id.
type UpdateOrderRequest struct {
	Name  string        `json:"name"`
	Lines []LineRequest `json:"lines"`
}

// ChangeStatusRequest is the body of PUT /api/v1/orders/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// ItemRequest is the body of POST /api/v1/items and PUT /api/v1/items/:id.
type ItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Amount      int     `json:"amount"`
	Price       float64 `json:"price"`
}

// TaxRateRequest is the body of PUT /api/v1/tax.
type TaxRateRequest struct {
	Rate float64 `json:"rate"`
}

// TaxRateResponse is the payload of GET /api/v1/tax.
type TaxRateResponse struct {
	Rate float64 `json:"rate"`
}

// OrderLineResponse is one priced line snapshot within an order payload.
type OrderLineResponse struct {
	ItemID   string  `json:"itemId"`
	ItemName string  `json:"itemName"`
	Price    float64 `json:"price"`
	Amount   int     `json:"amount"`
}

// OrderResponse is the order payload returned by the order endpoints.
type OrderResponse struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Lines      []OrderLineResponse `json:"lines"`
	Tip        float64             `json:"tip"`
	TaxRate    float64             `json:"taxRate"`
	TotalPrice float64             `json:"totalPrice"`
	Status     string              `json:"status"`
}

// ItemResponse is the catalog item payload returned by the item endpoints.
type ItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Amount      int     `json:"amount"`
	Price       float64 `json:"price"`
}

// orderToResponse maps a domain order aggregate to its HTTP payload.
// Used by the write endpoints, which return the placed or updated order.
func orderToResponse(aggregate *order.Order) OrderResponse {
	lines := aggregate.Lines()
	lineResponses := make([]OrderLineResponse, 0, len(lines))
	for _, line := range lines {
		lineResponses = append(lineResponses, OrderLineResponse{
			ItemID:   line.ItemID().String(),
			ItemName: line.ItemName(),
			Price:    line.Price(),
			Amount:   line.Amount(),
		})
	}

	return OrderResponse{
		ID:         aggregate.ID().String(),
		Name:       aggregate.Name(),
		Lines:      lineResponses,
		Tip:        aggregate.Tip(),
		TaxRate:    aggregate.TaxRate().Percent(),
		TotalPrice: aggregate.TotalPrice(),
		Status:     aggregate.Status().String(),
	}
}

// orderReadToResponse maps a read-side order row to its HTTP payload.
func orderReadToResponse(resp queries.OrderResponse) OrderResponse {
	lineResponses := make([]OrderLineResponse, 0, len(resp.Lines))
	for _, line := range resp.Lines {
		lineResponses = append(lineResponses, OrderLineResponse{
			ItemID:   line.ItemID.String(),
			ItemName: line.ItemName,
			Price:    line.Price,
			Amount:   line.Amount,
		})
	}

	return OrderResponse{
		ID:         resp.ID.String(),
		Name:       resp.Name,
		Lines:      lineResponses,
		Tip:        resp.Tip,
		TaxRate:    resp.TaxRate,
		TotalPrice: resp.TotalPrice,
		Status:     resp.Status,
	}
}

// itemReadToResponse maps a read-side item row to its HTTP payload.
func itemReadToResponse(resp queries.ItemResponse) ItemResponse {
	return ItemResponse{
		ID:          resp.ID.String(),
		Name:        resp.Name,
		Description: resp.Description,
		Amount:      resp.Amount,
		Price:       resp.Price,
	}
}
