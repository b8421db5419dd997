package models

// AuthResponse is returned by the login endpoint.
type AuthResponse struct {
	// Token is the signed bearer token to send in the Authorization header.
	Token string `json:"token"`

	// UserID is the authenticated user's identifier.
	UserID string `json:"user_id"`
}

// SessionResponse describes the session behind a bearer token.
type SessionResponse struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

// NameRequest carries a single name for category and folder creation.
type NameRequest struct {
	Name string `json:"name"`
}

// RenameRequest carries a new document title.
type RenameRequest struct {
	Title string `json:"title"`
}

// URLResponse carries a (possibly presigned) download URL.
type URLResponse struct {
	URL string `json:"url"`
}

// SignatureResponse carries the object key of an uploaded signature image.
type SignatureResponse struct {
	SignatureKey string `json:"signature_key"`
}
