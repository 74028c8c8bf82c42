package validators

import "megacitycab/internal/models"

func ValidateCategory(form *models.CategoryForm) ValidationErrors {
	return ValidateStruct(form)
}

func ValidateAdminUpdate(form *models.AdminUpdate) ValidationErrors {
	return ValidateStruct(form)
}

func ValidateCustomerUpdate(form *models.CustomerUpdate) ValidationErrors {
	return ValidateStruct(form)
}
