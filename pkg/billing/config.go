package billing

import "time"

// Config holds environment-supplied settings for the billing module.
//
// CustomerID pins every caller to a single provider customer. It is a
// development shortcut kept out of the resolvers: wiring swaps
// StaticCustomerResolver for a store-backed CustomerResolver without touching
// anything else.
type Config struct {
	CustomerID     string        `env:"BILLING_CUSTOMER_ID"`
	ReturnURL      string        `env:"BILLING_RETURN_URL" envDefault:"http://localhost:5173"`
	RequestTimeout time.Duration `env:"BILLING_REQUEST_TIMEOUT" envDefault:"10s"`
}
