package commands

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers a new fulfillment order at intake. Orders
// normally arrive with a marketplace order reference; for manual intake
// (walk-in receiving with no storefront record) the reference is generated so
// the uniqueness guarantees of the orders table still hold.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("11-09876-54321", "ThinkPad T14", "Refurbished", "LNV-T14", 1, "ebay-main")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	externalOrderID string
	productTitle    string
	condition       string
	sku             string
	quantity        int
	accountSource   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates an intake command. An empty external order id
// gets a generated manual reference; product title is required.
func NewCreateOrderCommand(
	externalOrderID, productTitle, condition, sku string,
	quantity int,
	accountSource string,
) (CreateOrderCommand, error) {
	if strings.TrimSpace(externalOrderID) == "" {
		externalOrderID = fmt.Sprintf("MAN-%s", uuid.NewString())
	}
	if quantity == 0 {
		quantity = 1
	}

	cmd := CreateOrderCommand{
		externalOrderID: strings.TrimSpace(externalOrderID),
		productTitle:    strings.TrimSpace(productTitle),
		condition:       condition,
		sku:             sku,
		quantity:        quantity,
		accountSource:   accountSource,
		guard:           guard.NewConstructorGuard(),
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ExternalOrderID returns the marketplace or generated manual reference.
func (c CreateOrderCommand) ExternalOrderID() string { return c.externalOrderID }

// ProductTitle returns the listed product title.
func (c CreateOrderCommand) ProductTitle() string { return c.productTitle }

// Condition returns the product condition description.
func (c CreateOrderCommand) Condition() string { return c.condition }

// SKU returns the optional stock keeping unit.
func (c CreateOrderCommand) SKU() string { return c.sku }

// Quantity returns the unit count.
func (c CreateOrderCommand) Quantity() int { return c.quantity }

// AccountSource returns the originating marketplace account label.
func (c CreateOrderCommand) AccountSource() string { return c.accountSource }
