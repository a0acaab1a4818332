package dynamo

// DynamoDB attribute names used in update expressions across all repos.
// Using constants prevents silent runtime bugs caused by key typos.
const (
	fieldStatus         = "status"
	fieldUpdatedAt      = "updated_at"
	fieldLastLoginAt    = "last_login_at"
	fieldDeliveryStatus = "delivery_status"
	fieldPaymentMethod  = "payment_method"
	fieldTransactionID  = "transaction_id"
)
