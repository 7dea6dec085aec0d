package user

type CreateUserRequest struct {
	DisplayName     string   `json:"displayName" validate:"required,min=2,max=50"`
	Triggers        []string `json:"triggers,omitempty"`
	Vulnerabilities []string `json:"vulnerabilities,omitempty"`
	SpiritualScore  int      `json:"spiritualScore,omitempty"`
}

type AddPointsRequest struct {
	Amount int `json:"amount" validate:"required"`
}
