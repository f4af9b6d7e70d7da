package processor

// Wire shapes of the processor's payments API.

type cardSource struct {
	Type        string `json:"type"`
	Number      string `json:"number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	CVV         int    `json:"cvv"`
}

type threeDS struct {
	Enabled    bool `json:"enabled"`
	AttemptN3D bool `json:"attempt_n3d"`
}

type paymentRequest struct {
	Source              cardSource        `json:"source"`
	Amount              int64             `json:"amount"`
	Currency            string            `json:"currency"`
	Reference           string            `json:"reference"`
	Capture             bool              `json:"capture"`
	ThreeDS             threeDS           `json:"3ds"`
	ProcessingChannelID string            `json:"processing_channel_id"`
	Metadata            map[string]string `json:"metadata"`
}

type paymentResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Approved bool   `json:"approved"`
	// Reference echoes the reference sent with the request.
	Reference string `json:"reference"`
	Source    struct {
		PaymentAccountReference string `json:"payment_account_reference"`
	} `json:"source"`
}
