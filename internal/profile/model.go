package profile

type Profile struct {
	Username    *string `json:"username"`
	DisplayName *string `json:"display_name"`
}

type Input struct {
	DisplayName string `json:"display_name" validate:"max=60"`
}
