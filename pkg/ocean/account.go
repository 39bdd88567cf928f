package ocean

const accountSegment = "account"

// Account describes the authenticated account.
type Account struct {
	DropletLimit    int    `json:"droplet_limit"`
	FloatingIPLimit int    `json:"floating_ip_limit"`
	VolumeLimit     int    `json:"volume_limit"`
	Email           string `json:"email"`
	UUID            string `json:"uuid"`
	EmailVerified   bool   `json:"email_verified"`
	Status          string `json:"status"`
	StatusMessage   string `json:"status_message"`
}

func (Account) responseKey() string { return "account" }

// GetAccount builds a request for the authenticated account.
func GetAccount() *Request[Get, Account] {
	return newRequest[Get, Account](accountSegment)
}
