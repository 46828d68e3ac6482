package models

// SettingsForm is the form-encoded input of the settings page. TimeTable
// arrives as a JSON string.
type SettingsForm struct {
	Notification         string `form:"notification"`
	NickName             string `form:"nickName" validate:"max=10"`
	ModeOfTransportation string `form:"modeOfTransportation"`
	TimeTable            string `form:"timeTable"`
}

// LikesRequest replaces the caller's liked photo IDs.
type LikesRequest struct {
	Likes []string `json:"likes"`
}

// FavRequest overwrites a photo's favorite count.
type FavRequest struct {
	Fav *int64 `json:"fav" binding:"required"`
}

// RewardRequest adds Delta to the caller's reward balance. Delta may be sent
// as a JSON number or a numeric string.
type RewardRequest struct {
	Delta FlexInt `json:"delta"`
}

// CreateUserRequest provisions the caller's user document.
type CreateUserRequest struct {
	NickName string `json:"nickName"`
}

// LogRequest appends an activity log for the caller.
type LogRequest struct {
	Title string `json:"title"`
	Place string `json:"place"`
	State string `json:"state"`
}

// SignatureRequest appends a signature.
type SignatureRequest struct {
	Sign string `json:"sign"`
}
