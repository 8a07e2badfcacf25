// services/notifier.go
package services

import (
	"errors"
	"strings"

	"cruise-backend/models"
	"cruise-backend/utils"

	"gorm.io/gorm"
)

// smtpNotifier sends the booking emails through the SMTP helpers. The
// operator address comes from the site settings row, with the
// OPERATOR_EMAIL env as fallback.
type smtpNotifier struct {
	db *gorm.DB
}

func NewSMTPNotifier(db *gorm.DB) ReservationNotifier {
	return &smtpNotifier{db: db}
}

func (n *smtpNotifier) operatorEmail() string {
	var setting models.SiteSetting
	if err := n.db.First(&setting).Error; err == nil {
		if addr := strings.TrimSpace(setting.Email); addr != "" {
			return addr
		}
	}
	return utils.EnvOrDefault("OPERATOR_EMAIL", "")
}

func (n *smtpNotifier) NotifyOperator(res *models.Reservation) error {
	to := n.operatorEmail()
	if to == "" {
		return errors.New("no operator email configured")
	}
	return utils.SendOperatorNotificationEmail(to, res)
}

func (n *smtpNotifier) NotifyCustomer(res *models.Reservation) error {
	return utils.SendCustomerConfirmationEmail(res.ContactEmail, res)
}
