package utils

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/jangir-ritik/andamanexcursion-sub005/models"
)

func SendEmail(to, subject, body, smtpHost, smtpPort, smtpUser, smtpPass string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", smtpUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	port := 587
	if p, err := strconv.Atoi(smtpPort); err == nil {
		port = p
	}
	d := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)
	return d.DialAndSend(m)
}

// SendBookingConfirmation отправляет письмо о созданной брони
func SendBookingConfirmation(booking *models.FerryBooking, smtpHost, smtpPort, smtpUser, smtpPass string) error {
	subject := fmt.Sprintf("Ferry booking received — %s, %s", booking.FerryName, booking.TravelDate)
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"We have received your ferry booking request.\n\n"+
			"Booking reference: %s\n"+
			"Ferry: %s (%s)\n"+
			"Route: %s -> %s\n"+
			"Date: %s, departure %s\n"+
			"Passengers: %d adult(s), %d child(ren), %d infant(s)\n"+
			"Total fare: %.2f INR\n\n"+
			"Our team will confirm your seats with the operator and get back to you shortly.\n",
		booking.ContactName,
		booking.SessionID,
		booking.FerryName, booking.Operator,
		booking.RouteFrom, booking.RouteTo,
		booking.TravelDate, booking.DepartureTime,
		booking.Adults, booking.Children, booking.Infants,
		booking.TotalFare,
	)
	return SendEmail(booking.ContactEmail, subject, body, smtpHost, smtpPort, smtpUser, smtpPass)
}
