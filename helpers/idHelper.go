package helpers

import "math/rand"

const (
	idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	idLength  = 9
)

// NewUserID returns a short opaque identifier: nine characters drawn from an
// alphanumeric charset.
func NewUserID() string {
	return generateRandomString(idLength, idCharset)
}

func generateRandomString(length int, charset string) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
