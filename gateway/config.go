package gateway

// Config is the immutable process configuration consumed by the gateway.
type Config struct {
	APIKey      string `env:"INTERNAL_API_KEY"`
	SenderEmail string `env:"SYSTEM_SENDER_EMAIL"`
	SenderName  string `env:"SYSTEM_SENDER_NAME"`
}

const defaultSenderName = "System"

// senderName resolves the display name: request value, then configured
// name, then "System".
func (c Config) senderName(requested string) string {
	switch {
	case requested != "":
		return requested
	case c.SenderName != "":
		return c.SenderName
	default:
		return defaultSenderName
	}
}
