package mailer

import (
	"fmt"
	"gataama/src/config"
	"gataama/src/lib"
	"gataama/src/models"
)

var sendFn = lib.SendMail

// NewSendFunc swaps the outbound mail transport.
func NewSendFunc(fn func(*lib.SendMailInput) error) {
	sendFn = fn
}

// SendDonationReceipt emails the thank-you receipt for a settled donation.
func SendDonationReceipt(txn *models.Transaction) error {
	cfg := config.Get()
	body := fmt.Sprintf(receiptTemplate, txn.FullNames, txn.Currency, txn.Amount)
	return sendFn(&lib.SendMailInput{
		From:     cfg.SenderEmail,
		FromName: "Gataama",
		To:       []string{txn.Email},
		Subject:  "Thank you for your Donation",
		Body:     body,
		Html:     true,
	})
}

const receiptTemplate = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Receipt Gataama</title>
  </head>
  <body>
    <div class="container">
      <div class="row">
        <div class="col">
          <p>Dear %s</p>
          <p>I hope this message finds you well. On behalf of Gataama, I want to express our deepest gratitude for your generous donation of %s %v to support our cause.</p>
          <p>Your contribution means more than words can express. With your support, we can continue our efforts to promote unity, empowerment, and progress across the African continent and its diaspora. Your belief in our mission is truly inspiring, and it reaffirms our commitment to making a positive impact in the lives of people throughout Africa and beyond.</p>
          <p>Your donation will directly contribute to initiatives aimed at fostering social, economic, and political development, as well as promoting cultural exchange and solidarity among African communities worldwide.</p>
          <p>Once again, thank you for your generosity and support. Together, we can work towards a brighter future for all Africans.</p>
          <p>With heartfelt thanks,</p>
          <br />
          <p>Best,</p>
          <h3>The Management of GATAAMA FOUNDATION.</h3>
        </div>
      </div>
    </div>
  </body>
</html>`
