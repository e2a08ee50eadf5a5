package model

// SyntheticOrder is built fresh for a single conversion attempt and
// discarded once the attempt resolves. It is never persisted.
type SyntheticOrder struct {
	BuyerHandle string
	UnitCount   int
	UnitPrice   float64
	Amount      float64
	Reference   string
}

// OrderAck is the storefront's acknowledgment of a created order.
type OrderAck struct {
	OrderID   int64
	CreatedAt string
}
