package models

// Location is a WGS-84 coordinate pair in degrees.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// EncryptedLocation is the at-rest form of a Location. All three fields are
// base64-encoded; the payload is only recoverable with the session's join
// code.
type EncryptedLocation struct {
	Encrypted string `json:"encrypted"`
	IV        string `json:"iv"`
	Salt      string `json:"salt"`
}
