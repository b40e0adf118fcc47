package dto

type EditFullNameRequest struct {
	NewFullName string `json:"newFullName" validate:"required"`
}

type EditPasswordRequest struct {
	Password    string `json:"password"    validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=4"`
}

type EditPhoneRequest struct {
	Password string `json:"password" validate:"required"`
	NewPhone string `json:"newPhone" validate:"required"`
}

type AdminFullNameResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	FullName string `json:"fullName"`
}
