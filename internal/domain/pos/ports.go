package pos

import "context"

// OrderProcessor is the local order-assembly pipeline. Orders accepted from
// the ordering platform are handed to it for pricing, accounting and receipt
// generation; it is owned by the host POS, not by the sync layer.
type OrderProcessor interface {
	// Process persists the assembled order through the POS pipeline and
	// returns it with identifiers, tracking number and receipt reference
	// filled in.
	Process(ctx context.Context, order *Order) (*Order, error)
}
