package helper

import "golang.org/x/crypto/bcrypt"

// HashPassword meng-hash password plaintext dengan bcrypt.
// Yang disimpan di DB selalu hash, tidak pernah plaintext.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
