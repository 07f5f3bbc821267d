package session

// Session carries the opaque bearer token issued by the backend and the role
// tags attached to it. A zero Session means "not logged in".
type Session struct {
	Token string
	Roles []string
}

// Authenticated reports whether a token is present. Token validity itself is
// the backend's call; the gateway never inspects the token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// HasRole reports membership of role in the session's role set.
func (s Session) HasRole(role string) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}
