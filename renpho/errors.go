package renpho

import "fmt"

// EncryptionError reports a failure to encrypt the account password with the
// vendor public key. It is fatal for authentication: no sign-in request is
// attempted without a ciphertext.
type EncryptionError struct {
	Err error
}

func (e *EncryptionError) Error() string {
	return fmt.Sprintf("encrypt password: %v", e.Err)
}

func (e *EncryptionError) Unwrap() error { return e.Err }

// AuthError reports a failed or impossible authentication: missing
// credentials, vendor rejection, a login response without a session key, or
// exhausted sign-in retries.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

func (e *AuthError) Unwrap() error { return e.Err }

// APIError reports a failed API exchange: an unreachable network (probe
// failure), a transport-level error, or a non-success vendor status code.
type APIError struct {
	Method  string
	URL     string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Method != "" || e.URL != "" {
		return fmt.Sprintf("api request failed %s %s: %s", e.Method, e.URL, msg)
	}
	return fmt.Sprintf("api request failed: %s", msg)
}

func (e *APIError) Unwrap() error { return e.Err }
