package request

// LoginRequest is the payload shared by the three login endpoints.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
