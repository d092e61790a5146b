package dto

// UpdateSettingsRequest campos a actualizar (nil = sin cambio).
type UpdateSettingsRequest struct {
	CompanyName *string `json:"companyName"`
	Currency    *string `json:"currency"`
}

// SettingsResponse configuración global actual.
type SettingsResponse struct {
	CompanyName string `json:"companyName"`
	Currency    string `json:"currency"`
}

// ThemeResponse tema vigente tras un toggle.
type ThemeResponse struct {
	Theme string `json:"theme"`
}
