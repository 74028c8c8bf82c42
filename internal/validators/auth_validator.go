package validators

import "megacitycab/internal/models"

func ValidateLogin(form *models.LoginForm) ValidationErrors {
	return ValidateStruct(form)
}
