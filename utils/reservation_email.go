package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"

	"cruise-backend/models"
)

// formulaLabels maps the formula slugs to the names used on the site.
var formulaLabels = map[string]string{
	"journee":       "Journée en mer",
	"golden":        "Golden Hour",
	"privatisation": "Privatisation",
	"basseseason":   "Basse saison",
}

func formulaLabel(formula string) string {
	if label, ok := formulaLabels[formula]; ok {
		return label
	}
	return formula
}

func smtpConfig() (addr string, auth smtp.Auth, from, user string, ok bool) {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user = os.Getenv("SMTP_USERNAME")
	pass := os.Getenv("SMTP_PASSWORD")
	fromName := os.Getenv("SMTP_FROM_NAME")

	if host == "" || port == "" || user == "" || pass == "" {
		return "", nil, "", "", false
	}

	addr = fmt.Sprintf("%s:%s", host, port)
	auth = smtp.PlainAuth("", user, pass, host)
	from = fmt.Sprintf("%s <%s>", fromName, user)
	return addr, auth, from, user, true
}

func sendMultipart(recipient, subject, plainBody, htmlBody string) error {
	addr, auth, from, user, ok := smtpConfig()
	if !ok {
		log.Printf("[MOCK EMAIL] to:%s subject:%q", recipient, subject)
		return nil
	}

	boundary := "----=_RESERVATION_EMAIL_BOUNDARY"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipient))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, user, []string{recipient}, []byte(sb.String())); err != nil {
		log.Printf("Failed to send email to %s: %v", recipient, err)
		return err
	}
	return nil
}

func reservationSummaryText(res *models.Reservation) string {
	return fmt.Sprintf(
		"Référence : %s\n"+
			"Bateau : %s\n"+
			"Formule : %s\n"+
			"Date : %s\n"+
			"Adultes : %d, Enfants : %d\n"+
			"Total : %d€ — Acompte : %d€\n",
		res.ReferenceCode, res.BoatType, formulaLabel(res.Formula),
		res.Date.Format("02/01/2006"), res.Adults, res.Children,
		res.TotalPrice, res.DepositAmount,
	)
}

func reservationSummaryHTML(res *models.Reservation) string {
	return fmt.Sprintf(`<table cellpadding="4">
<tr><td>Référence</td><td><strong>%s</strong></td></tr>
<tr><td>Bateau</td><td>%s</td></tr>
<tr><td>Formule</td><td>%s</td></tr>
<tr><td>Date</td><td>%s</td></tr>
<tr><td>Adultes</td><td>%d</td></tr>
<tr><td>Enfants</td><td>%d</td></tr>
<tr><td>Total</td><td><strong>%d€</strong></td></tr>
<tr><td>Acompte (30%%)</td><td><strong>%d€</strong></td></tr>
</table>`,
		res.ReferenceCode, res.BoatType, formulaLabel(res.Formula),
		res.Date.Format("02/01/2006"), res.Adults, res.Children,
		res.TotalPrice, res.DepositAmount,
	)
}

// SendOperatorNotificationEmail tells the operator a reservation request
// came in.
func SendOperatorNotificationEmail(recipient string, res *models.Reservation) error {
	subject := fmt.Sprintf("Nouvelle réservation %s — %s", res.ReferenceCode, res.Date.Format("02/01/2006"))

	plainBody := fmt.Sprintf(
		"Nouvelle demande de réservation.\n\n%s\nContact : %s — %s — %s\nMessage : %s\n",
		reservationSummaryText(res),
		res.ContactName, res.ContactEmail, res.ContactPhone, res.Message,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html><body style="font-family:Arial, Helvetica, sans-serif; color:#222;">
<h2>Nouvelle demande de réservation</h2>
%s
<p>Contact : %s — %s — %s</p>
<p>Message : %s</p>
</body></html>`,
		reservationSummaryHTML(res),
		res.ContactName, res.ContactEmail, res.ContactPhone, res.Message,
	)

	return sendMultipart(recipient, subject, plainBody, htmlBody)
}

// SendCustomerConfirmationEmail acknowledges the request to the
// customer. The reservation is pending until the operator confirms the
// deposit.
func SendCustomerConfirmationEmail(recipient string, res *models.Reservation) error {
	subject := fmt.Sprintf("Votre demande de réservation %s", res.ReferenceCode)

	plainBody := fmt.Sprintf(
		"Bonjour %s,\n\n"+
			"Nous avons bien reçu votre demande de réservation.\n\n%s\n"+
			"Votre réservation sera confirmée à réception de l'acompte de %d€.\n"+
			"Le solde est à régler le jour de la sortie.\n\n"+
			"À bientôt à bord !\n",
		res.ContactName, reservationSummaryText(res), res.DepositAmount,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html><body style="font-family:Arial, Helvetica, sans-serif; color:#222;">
<h2>Demande de réservation reçue</h2>
<p>Bonjour %s,</p>
<p>Nous avons bien reçu votre demande de réservation.</p>
%s
<p>Votre réservation sera confirmée à réception de l'acompte de <strong>%d€</strong>.
Le solde est à régler le jour de la sortie.</p>
<p>À bientôt à bord !</p>
</body></html>`,
		res.ContactName, reservationSummaryHTML(res), res.DepositAmount,
	)

	return sendMultipart(recipient, subject, plainBody, htmlBody)
}
