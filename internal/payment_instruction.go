package internal

import (
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
)

const vietQRImageURL = "https://img.vietqr.io/image/%s-%s-compact.png?%s"

// PaymentInstructions renders the bank-transfer QR link for an order. The order
// code goes into the transfer memo so the webhook can correlate the payment.
type PaymentInstructions struct {
	BankID      string
	AccountNo   string
	AccountName string
}

func (p PaymentInstructions) URL(orderCode string, amount decimal.Decimal) string {
	if p.BankID == "" || p.AccountNo == "" {
		return ""
	}

	q := url.Values{}
	q.Set("amount", amount.Ceil().String())
	q.Set("addInfo", orderCode)
	if p.AccountName != "" {
		q.Set("accountName", p.AccountName)
	}
	return fmt.Sprintf(vietQRImageURL, url.PathEscape(p.BankID), url.PathEscape(p.AccountNo), q.Encode())
}
