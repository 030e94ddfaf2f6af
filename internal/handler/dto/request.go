package dto

type CodeRequest struct {
	Code string `json:"code" binding:"required"`
}

type SelectRequest struct {
	RegistrationID string `json:"registration_id" binding:"required"`
}

type RosterQuery struct {
	Q      string `form:"q"`
	Status string `form:"status"`
}

type JournalQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

type QRCodeQuery struct {
	Code string `form:"code" binding:"required"`
	Size int    `form:"size" binding:"omitempty,min=64,max=1024"`
}
