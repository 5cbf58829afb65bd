// file: internals/helpers/auth/locals.go
package helper

// Locals keys hydrated by the AuthJWT middleware.
const (
	LocUserID   = "user_id"   // string | uuid
	LocUserName = "user_name" // string
	LocRole     = "role"      // string: student|moderator|admin
	LocClaims   = "jwt_claims"
	LocRawToken = "raw_token"
)
