package dto

type SettingsRequest struct {
	Theme         *string `json:"theme"`
	Currency      *string `json:"currency"`
	Notifications *bool   `json:"notifications"`
}

type SettingsResponse struct {
	Theme         string `json:"theme"`
	Currency      string `json:"currency"`
	Notifications bool   `json:"notifications"`
}
