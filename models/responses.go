package models

// MessageResponse is the body written for plain status replies and errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
