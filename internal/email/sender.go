package email

import (
	"fmt"
	"time"
)

// SendSignInWarning notifies the account owner that a refresh token was
// redeemed from an IP address it was not issued to. Stub transport.
func SendSignInWarning(email, newIPAddress string) {
	time.Sleep(5 * time.Second)
	fmt.Printf("Email notification to %s! Warning: refresh request from new IP address %s.\n", email, newIPAddress)
}
