package http

import "zenned/internal/user"

// --- Request DTOs ---

type signupReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r signupReq) toInput() user.SignupInput {
	return user.SignupInput{Email: r.Email, Password: r.Password, Name: r.Name}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{Email: r.Email, Password: r.Password}
}

type updateSettingsReq struct {
	UserID   int64 `json:"-"`
	DarkMode *bool `json:"dark_mode"`
}

func (r updateSettingsReq) validate() error {
	if r.DarkMode == nil {
		return user.ErrInvalidSettings
	}
	return nil
}

func (r updateSettingsReq) toInput() user.UpdateSettingsInput {
	return user.UpdateSettingsInput{UserID: r.UserID, DarkMode: *r.DarkMode}
}

// --- Response DTOs ---

type signupResp struct {
	UserID int64  `json:"user_id"`
	Token  string `json:"token"`
}

func (h *handler) newSignupResp(out user.SignupOutput) signupResp {
	return signupResp{UserID: out.User.ID, Token: out.Token}
}

type loginResp struct {
	UserID   int64  `json:"user_id"`
	Name     string `json:"name"`
	DarkMode bool   `json:"dark_mode"`
	Token    string `json:"token"`
}

func (h *handler) newLoginResp(out user.LoginOutput) loginResp {
	return loginResp{
		UserID:   out.User.ID,
		Name:     out.User.Name,
		DarkMode: out.User.DarkMode,
		Token:    out.Token,
	}
}

type settingsResp struct {
	DarkMode bool `json:"dark_mode"`
}
