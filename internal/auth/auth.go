// Package auth implements the developer-mode credential gate. The check is a
// capability gate for the terminal's dev commands, not a security boundary:
// credentials ship in the client and are compared in memory.
package auth

// Authenticator validates a username/password pair submitted at the
// `dev login` prompt. Implementations must be safe to call repeatedly; the
// terminal re-runs the gate on every login attempt.
type Authenticator interface {
	Authenticate(username, password string) bool
}

// Static compares against a fixed credential pair, case-sensitively.
type Static struct {
	Username string
	Password string
}

// Authenticate reports whether both tokens match exactly.
func (s Static) Authenticate(username, password string) bool {
	return username == s.Username && password == s.Password
}

// Default returns the stock EMBER developer credentials.
func Default() Static {
	return Static{Username: "zyphonz", Password: "Cookie113!"}
}
