package paymentstatus

type GetPaymentStatusQuery struct {
	UserID  string
	OrderID int64
}

type PaymentStatusResponse struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}
