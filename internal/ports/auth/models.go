package auth

// Claims representa la identidad extraída de un token de sesión.
type Claims struct {
	UserID string
	Email  string
	Role   string
}
