package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "inkwell-dev-secret"
	JWTExpirationTime        = time.Hour * 24
)

// UserClaims carries the identity-provider profile we need locally. The
// Subject registered claim is the provider's stable user id.
type UserClaims struct {
	Email     string   `json:"email"`
	Phone     string   `json:"phone_number"`
	FirstName string   `json:"given_name"`
	LastName  string   `json:"family_name"`
	Avatar    string   `json:"picture"`
	Roles     []string `json:"roles"`
	jwt.RegisteredClaims
}
