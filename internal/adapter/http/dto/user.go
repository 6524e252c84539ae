package dto

type UserMini struct {
	ID       uint64 `json:"id"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
}
