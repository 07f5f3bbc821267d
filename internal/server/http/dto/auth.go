package dto

// CredentialsRequest describes the login/register payload.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
