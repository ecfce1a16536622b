package valueobject

import "fmt"

// QuoteStatus is the lifecycle state of a quote.
type QuoteStatus string

const (
	StatusQuoted   QuoteStatus = "QUOTED"
	StatusReferred QuoteStatus = "REFERRED"
	StatusDeclined QuoteStatus = "DECLINED"
	StatusExpired  QuoteStatus = "EXPIRED"
)

// NewQuoteStatus validates and returns a QuoteStatus from its symbolic name.
func NewQuoteStatus(s string) (QuoteStatus, error) {
	switch qs := QuoteStatus(s); qs {
	case StatusQuoted, StatusReferred, StatusDeclined, StatusExpired:
		return qs, nil
	default:
		return "", fmt.Errorf("unknown quote status %q", s)
	}
}

// String returns the symbolic name used on the wire.
func (q QuoteStatus) String() string { return string(q) }
