package models

// User carries the identity and public profile fields the messaging layer
// needs. Account management (signup, login, password reset) lives in the
// auth service and is not handled here.
type User struct {
	Model
	Fullname string `json:"fullname"`
	Username string `json:"username" gorm:"unique;not null" binding:"required,min=2"`
	Email    string `json:"email" gorm:"unique;not null" binding:"required,email"`
	Avatar   string `json:"avatar"`
	Online   bool   `json:"online" gorm:"default:false"`
}

// ChatMemberView is the public slice of a user exposed inside chat listings.
type ChatMemberView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Online   bool   `json:"online"`
}

func (u *User) MemberView() ChatMemberView {
	return ChatMemberView{
		ID:       u.ID,
		Username: u.Username,
		Avatar:   u.Avatar,
		Online:   u.Online,
	}
}
