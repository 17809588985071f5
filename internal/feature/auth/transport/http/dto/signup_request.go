package dto

// RegisterReq represents the request body for the /createAccount endpoint.
// Both fields only need to be present; no length rules are imposed
// beyond that.
type RegisterReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResp is the success payload for /createAccount.
type RegisterResp struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}
