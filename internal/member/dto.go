package member

// GetProfileResponse is the body of GET /api/v1/members/me
type GetProfileResponse struct {
	ID          uint32 `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	CheckCount  int64  `json:"checkCount"`
}
