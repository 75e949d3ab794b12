package cancel

type CancelOrderCommand struct {
	UserID  string
	OrderID int64
}
