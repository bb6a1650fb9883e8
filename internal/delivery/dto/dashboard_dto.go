package dto

// DashboardResponse carries the role-specific dashboard block. Stats is a
// flat counter map whose keys depend on the role.
type DashboardResponse struct {
	Role           string         `json:"role"`
	WelcomeMessage string         `json:"welcome_message"`
	Stats          map[string]int `json:"stats"`
}
