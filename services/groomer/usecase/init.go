package usecase

import (
	"github.com/go-playground/validator/v10"
	"github.com/piresc/groomer/services/auth"
	"github.com/piresc/groomer/services/groomer"
)

// GroomerUsecase implements the account operations of the signed-in groomer
type GroomerUsecase struct {
	groomerGW groomer.GroomerGW
	authUC    auth.AuthUC
	validate  *validator.Validate
}

// NewGroomerUsecase creates a new groomer usecase instance
func NewGroomerUsecase(groomerGW groomer.GroomerGW, authUC auth.AuthUC) *GroomerUsecase {
	return &GroomerUsecase{
		groomerGW: groomerGW,
		authUC:    authUC,
		validate:  validator.New(),
	}
}

var _ groomer.GroomerUC = (*GroomerUsecase)(nil)
