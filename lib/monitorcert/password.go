package monitorcert

import (
	"crypto/rand"
)

// PasswordLength is the length of the generated store passwords.
const PasswordLength = 20

// passwordAlphabet restricts passwords to alphanumerics so they paste
// cleanly into properties files and shell commands.
const passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// generatePassword creates a random password of the given length over
// passwordAlphabet. Random bytes outside the usable range are discarded so
// every character is equally likely.
func generatePassword(length int) (string, error) {
	limit := 256 - 256%len(passwordAlphabet)

	password := make([]byte, 0, length)
	randomBytes := make([]byte, length)
	for len(password) < length {
		if _, err := rand.Read(randomBytes); err != nil {
			return "", err
		}
		for _, b := range randomBytes {
			if int(b) >= limit {
				continue
			}
			password = append(password, passwordAlphabet[int(b)%len(passwordAlphabet)])
			if len(password) == length {
				break
			}
		}
	}
	return string(password), nil
}
