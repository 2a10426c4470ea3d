package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

// PaymentQRGenerator renders static UPI payment requests. Nothing verifies
// that a payment was made.
type PaymentQRGenerator struct {
	UPIID     string
	PayeeName string
	Size      int
}

func (g PaymentQRGenerator) Payee() (string, string) {
	return g.UPIID, g.PayeeName
}

func (g PaymentQRGenerator) PaymentURL(amount decimal.Decimal) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&cu=INR",
		upiEscape(g.UPIID), upiEscape(g.PayeeName), amount.StringFixed(2))
}

// UPI apps expect %20 for spaces and a literal @ in the payee address.
var upiUnescaper = strings.NewReplacer("+", "%20", "%40", "@")

func upiEscape(s string) string {
	return upiUnescaper.Replace(url.QueryEscape(s))
}

func (g PaymentQRGenerator) Generate(amount decimal.Decimal) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(g.PaymentURL(amount), qrcode.Medium, size)
}

var _ QRGenerator = PaymentQRGenerator{}
