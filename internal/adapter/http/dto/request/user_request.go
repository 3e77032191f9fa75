package request

// OnboardingRequest is the role-based onboarding form filled after
// first sign-in.
type OnboardingRequest struct {
	Role        string `json:"role" binding:"required"`
	FullName    string `json:"full_name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	DPI         string `json:"dpi" binding:"required"`
}

// ProfileUpdateRequest updates bio and/or skills. Nil fields are left
// untouched.
type ProfileUpdateRequest struct {
	Bio    *string  `json:"bio"`
	Skills []string `json:"skills"`
}
