package order

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// ErrAlreadyShipped is returned when a shipped order is asked to transition
// again. Shipment is final; the flag only ever moves false to true.
var ErrAlreadyShipped = errors.New("order is already shipped")

// ErrTesterAlreadyAssigned signals a lost first-claim race: the order's tester
// slot was taken between read and claim.
var ErrTesterAlreadyAssigned = errors.New("tester is already assigned")

// Order represents one sellable unit moving through the warehouse pipeline
// (receiving, testing, packing, shipping). It is the aggregate root for the
// order lifecycle.
//
// Order maintains these invariants:
//   - the external order id and product title are never empty
//   - isShipped transitions false to true only and is never reverted
//   - skippedBy only grows; repeat skips by the same staff id are preserved
//   - the persisted status is always re-derivable via InferStatus
//
// The struct uses private fields to ensure encapsulation; it can only be
// created through NewOrder (intake) or RestoreOrder (persistence).
type Order struct {
	id               int64
	externalOrderID  string
	productTitle     string
	condition        string
	sku              string
	trackingNumber   string
	status           Status
	testerID         *kernel.StaffID
	packerID         *kernel.StaffID
	shipByDate       *time.Time
	outOfStockReason string
	skippedBy        []kernel.StaffID
	isShipped        bool
	quantity         int
	notes            string
	accountSource    string
	createdAt        time.Time

	isConstructed bool
}

// NewOrder creates a new Order at intake. The order starts unassigned, not
// shipped, with an empty skip history. The internal id is assigned by the
// store on first save.
func NewOrder(externalOrderID, productTitle, condition, sku string, quantity int) (*Order, error) {
	o := &Order{
		status:        Unassigned,
		quantity:      quantity,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setExternalOrderID(externalOrderID),
		o.setProductTitle(productTitle),
		o.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	o.condition = condition
	o.sku = sku
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. The stored status
// token is normalized on the way in, so restored aggregates never carry
// known-invalid tokens even when the row has not been healed yet.
func RestoreOrder(
	id int64,
	externalOrderID, productTitle, condition, sku, trackingNumber string,
	statusToken string,
	testerID, packerID *kernel.StaffID,
	shipByDate *time.Time,
	outOfStockReason string,
	skippedBy []kernel.StaffID,
	isShipped bool,
	quantity int,
	notes, accountSource string,
	createdAt time.Time,
) (*Order, error) {
	status, err := NormalizeToken(statusToken)
	if err != nil {
		return nil, err
	}

	o := &Order{
		id:               id,
		externalOrderID:  externalOrderID,
		productTitle:     productTitle,
		condition:        condition,
		sku:              sku,
		trackingNumber:   trackingNumber,
		status:           status,
		testerID:         testerID,
		packerID:         packerID,
		shipByDate:       shipByDate,
		outOfStockReason: outOfStockReason,
		skippedBy:        skippedBy,
		isShipped:        isShipped,
		quantity:         quantity,
		notes:            notes,
		accountSource:    accountSource,
		createdAt:        createdAt,
		isConstructed:    true,
	}
	return o, nil
}

// Validate ensures the Order was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the internal surrogate identifier; zero until first persisted.
func (o *Order) ID() int64 { return o.id }

// AssignID records the database-generated identifier after the first insert.
// A non-zero id is never replaced.
func (o *Order) AssignID(id int64) {
	if o.id == 0 {
		o.id = id
	}
}

// ExternalOrderID returns the marketplace order reference.
func (o *Order) ExternalOrderID() string { return o.externalOrderID }

// ProductTitle returns the listed product title.
func (o *Order) ProductTitle() string { return o.productTitle }

// Condition returns the product condition description.
func (o *Order) Condition() string { return o.condition }

// SKU returns the optional stock keeping unit.
func (o *Order) SKU() string { return o.sku }

// TrackingNumber returns the raw shipping tracking number, empty until a
// label exists.
func (o *Order) TrackingNumber() string { return o.trackingNumber }

// TrackingKey returns the comparison key for the order's tracking number.
func (o *Order) TrackingKey() kernel.TrackingKey {
	return kernel.NewTrackingKey(o.trackingNumber)
}

// Status returns the current persisted status.
func (o *Order) Status() Status { return o.status }

// TesterID returns the assigned tester, or nil.
func (o *Order) TesterID() *kernel.StaffID { return o.testerID }

// PackerID returns the assigned packer, or nil.
func (o *Order) PackerID() *kernel.StaffID { return o.packerID }

// ShipByDate returns the ship-by deadline, or nil.
func (o *Order) ShipByDate() *time.Time { return o.shipByDate }

// OutOfStockReason returns the blocking reason; non-empty implies the order
// is in the missing-parts state.
func (o *Order) OutOfStockReason() string { return o.outOfStockReason }

// SkippedBy returns the append-only list of staff ids who declined the order,
// in call order, repeats included.
func (o *Order) SkippedBy() []kernel.StaffID { return o.skippedBy }

// IsShipped reports whether the shipping submission step ran for this order.
func (o *Order) IsShipped() bool { return o.isShipped }

// Quantity returns the unit count.
func (o *Order) Quantity() int { return o.quantity }

// Notes returns free-form operator notes.
func (o *Order) Notes() string { return o.notes }

// AccountSource returns the originating marketplace account label.
func (o *Order) AccountSource() string { return o.accountSource }

// CreatedAt returns the intake timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// SetTrackingNumber records the shipping label once it exists. An already
// populated tracking number is kept; labels are written once and reconciled,
// not rewritten.
func (o *Order) SetTrackingNumber(tracking string) {
	if o.trackingNumber == "" {
		o.trackingNumber = strings.TrimSpace(tracking)
	}
}

// Start claims the tester slot with first-claim semantics: it succeeds only
// when no tester is assigned yet. The storage layer enforces the same rule
// with a conditional update, so concurrent starts cannot both win.
func (o *Order) Start(staffID kernel.StaffID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	if o.testerID != nil {
		return ErrTesterAlreadyAssigned
	}

	o.testerID = &staffID
	o.recomputeStatus()
	return nil
}

// Skip appends the staff id to the skip history. Repeats are intentionally
// preserved; the list records every decline, not the distinct set.
func (o *Order) Skip(staffID kernel.StaffID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	o.skippedBy = append(o.skippedBy, staffID)
	return nil
}

// AssignPacker sets or clears the packer assignment.
func (o *Order) AssignPacker(packerID *kernel.StaffID) error {
	if packerID != nil {
		if err := packerID.Validate(); err != nil {
			return err
		}
	}

	o.packerID = packerID
	o.recomputeStatus()
	return nil
}

// SetShipByDate sets or clears the ship-by deadline.
func (o *Order) SetShipByDate(date *time.Time) {
	o.shipByDate = date
}

// SetAccountSource records the originating marketplace account label.
func (o *Order) SetAccountSource(accountSource string) {
	o.accountSource = accountSource
}

// SetNotes replaces free-form operator notes.
func (o *Order) SetNotes(notes string) {
	o.notes = notes
}

// MarkShipped finalizes the order. Only false to true; a shipped order stays
// shipped.
func (o *Order) MarkShipped() error {
	if o.isShipped {
		return ErrAlreadyShipped
	}

	o.isShipped = true
	o.recomputeStatus()
	return nil
}

// ApplyStationFacts recomputes the status with evidence from the station
// logs, which the aggregate cannot observe on its own.
func (o *Order) ApplyStationFacts(testEvent, packEvent bool) {
	o.status = InferStatus(StatusFacts{
		TesterAssigned: o.testerID != nil,
		PackerAssigned: o.packerID != nil,
		OutOfStock:     o.outOfStockReason != "",
		TestEvent:      testEvent,
		PackEvent:      packEvent,
		Shipped:        o.isShipped,
	})
}

// RefreshStatus re-derives the status from the aggregate's current facts.
// Used after field patches applied directly at the storage layer.
func (o *Order) RefreshStatus() {
	o.recomputeStatus()
}

// FillFrom copies the given values into fields that are currently blank.
// Populated fields are never overwritten; this is the merge rule for staged
// exception rows.
func (o *Order) FillFrom(trackingNumber, productTitle, condition, sku string) {
	if o.trackingNumber == "" {
		o.trackingNumber = strings.TrimSpace(trackingNumber)
	}
	if o.productTitle == "" {
		o.productTitle = productTitle
	}
	if o.condition == "" {
		o.condition = condition
	}
	if o.sku == "" {
		o.sku = sku
	}
}

func (o *Order) recomputeStatus() {
	// Station log evidence is unknown here; later stages already reached are
	// kept rather than regressed.
	inferred := InferStatus(StatusFacts{
		TesterAssigned: o.testerID != nil,
		PackerAssigned: o.packerID != nil,
		OutOfStock:     o.outOfStockReason != "",
		TestEvent:      o.status == Tested || o.status == Packed,
		PackEvent:      o.status == Packed,
		Shipped:        o.isShipped,
	})
	o.status = inferred
}

func (o *Order) setExternalOrderID(externalOrderID string) error {
	externalOrderID = strings.TrimSpace(externalOrderID)
	if externalOrderID == "" {
		return errs.NewValueIsRequiredError("externalOrderId")
	}
	o.externalOrderID = externalOrderID
	return nil
}

func (o *Order) setProductTitle(productTitle string) error {
	productTitle = strings.TrimSpace(productTitle)
	if productTitle == "" {
		return errs.NewValueIsRequiredError("productTitle")
	}
	o.productTitle = productTitle
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, 1000)
	}
	o.quantity = quantity
	return nil
}
