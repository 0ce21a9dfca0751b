package entity

// AlertEmail is the provider-neutral message handed to a mailer.
type AlertEmail struct {
	To    string
	Title string
	Body  string
	Data  map[string]string
}

type SendAlertInput struct {
	Email    string
	Name     string
	Severity string
	Body     string
}

// ProviderResponse is whatever the email provider answered, passed through as-is.
type ProviderResponse map[string]interface{}
