package models

import "encoding/json"

type WebhookEvent struct {
	Id        string          `json:"id"`
	WebhookId string          `json:"webhook_id"`
	Type      string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
}

// KYCStatus is pushed when the backend moves a user's verification.
type KYCStatus struct {
	UserId string `json:"user_id"`
	Status string `json:"status"`
}
