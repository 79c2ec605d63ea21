package domain

import "time"

// Client hires vehicles and is billed per job or per month.
type Client struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) Validate() error {
	var errs ValidationErrors
	if c.Name == "" {
		errs = errs.Add("name", "name is required")
	}
	return errs.OrNil()
}

// ClientPayment is money received from a client, netted against billed jobs
// when computing an outstanding balance.
type ClientPayment struct {
	ID        int32     `json:"id"`
	ClientID  int32     `json:"client_id"`
	Amount    float64   `json:"amount"`
	PaidOn    string    `json:"paid_on"`
	Reference string    `json:"reference"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *ClientPayment) Validate() error {
	var errs ValidationErrors
	if p.ClientID <= 0 {
		errs = errs.Add("client_id", "client is required")
	}
	if p.Amount <= 0 {
		errs = errs.Add("amount", "must be greater than zero")
	}
	if !ValidDate(p.PaidOn) {
		errs = errs.Add("paid_on", "must be a calendar date in YYYY-MM-DD format")
	}
	return errs.OrNil()
}
