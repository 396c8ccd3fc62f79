package dto

// MeResponse usuario autenticado con su organización y rol resueltos.
type MeResponse struct {
	UserID      string  `json:"user_id"`
	Email       string  `json:"email"`
	DisplayName *string `json:"display_name,omitempty"`
	DarkMode    bool    `json:"dark_mode"`
	OrgID       string  `json:"org_id"`
	OrgName     string  `json:"org_name"`
	RoleKey     string  `json:"role_key"`
}

// UpdatePreferencesRequest actualización de preferencias del usuario.
type UpdatePreferencesRequest struct {
	DarkMode *bool `json:"dark_mode" validate:"required"`
}

// RoleResponse rol de aplicación.
type RoleResponse struct {
	Key         string `json:"key"`
	Description string `json:"description"`
}
