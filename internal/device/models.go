package device

import "time"

type Device struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	IMEI      string    `json:"imei"`
	Name      string    `json:"name"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
}

// Location is a device's last reported position. A nil *Location means "no
// location available" and is not an error condition.
type Location struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp"`
}
