package dto

const (
	EventProductRegistered         = "product_registered"
	EventProductRegistrationFailed = "product_registration_failed"
)

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type ProductRegistrationEvent struct {
	FormID     string `json:"form_id"`
	ProductID  string `json:"product_id"`
	Title      string `json:"title"`
	ByteSize   int    `json:"byte_size"`
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
	OccurredAt int64  `json:"occurred_at"`
}
