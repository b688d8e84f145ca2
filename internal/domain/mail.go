package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type WelcomeMailData struct {
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
}

type ResetPasswordMailData struct {
	FirstName  string `json:"first_name"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type MassNotificationMailData struct {
	FirstName        string           `json:"first_name"`
	NotificationType NotificationType `json:"notification_type"`
}
