package payments

import (
	"fmt"
	"log"
	"time"
)

// Result is the outcome of a payment attempt.
type Result struct {
	IsSuccess bool   `json:"is_success"`
	Message   string `json:"message"`
}

// Client is the payment collaborator of the reservation flow. The real
// gateway integration is out of scope; MakePayment is deliberately
// parameterless because the current flow charges nothing yet and only
// gates the commit on the gateway's yes/no.
type Client interface {
	MakePayment() Result
}

type stubClient struct{}

// NewStubClient returns a payment client that always approves. It stands in
// for the gateway in development and in tests that exercise the happy path.
func NewStubClient() Client {
	return &stubClient{}
}

func (c *stubClient) MakePayment() Result {
	txRef := fmt.Sprintf("PAY-%d", time.Now().UnixNano())
	log.Printf("payment approved (stub): %s", txRef)
	return Result{
		IsSuccess: true,
		Message:   "Payment approved",
	}
}
