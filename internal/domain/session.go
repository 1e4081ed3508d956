package domain

type SessionState string

const (
	SessionPending    SessionState = "pending"
	SessionAuthorized SessionState = "authorized"
	SessionAnonymous  SessionState = "anonymous"
)

// Session holds the authenticated identity for the running client. Token and
// user are present together or absent together.
type Session struct {
	Token string
	User  *UserSummary
}

// Consistent reports whether the token/user pairing invariant holds.
func (s Session) Consistent() bool {
	return (s.Token == "") == (s.User == nil)
}

func (s Session) Anonymous() bool {
	return s.Token == "" && s.User == nil
}
