package services

// OrderNotifier lets services announce that a user's order list changed; the
// ws hub implements it. A nil notifier is fine.
type OrderNotifier interface {
	OrdersChanged(userID uint)
}
