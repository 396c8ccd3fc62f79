package usecase

import (
	"context"

	"github.com/mdmgroup/inventory-api/internal/application/dto"
	"github.com/mdmgroup/inventory-api/internal/application/identity"
	"github.com/mdmgroup/inventory-api/internal/domain/repository"
)

// UserUseCase preferencias y perfil del usuario autenticado.
type UserUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, roleRepo: roleRepo}
}

// UpdateDarkMode persiste la preferencia de tema del usuario.
func (uc *UserUseCase) UpdateDarkMode(ctx context.Context, userID string, darkMode bool) error {
	return uc.userRepo.UpdateDarkMode(ctx, userID, darkMode)
}

// Me arma la respuesta de perfil a partir de la identidad ya resuelta por el
// gate (sin segunda consulta).
func (uc *UserUseCase) Me(id *identity.Identity) *dto.MeResponse {
	return &dto.MeResponse{
		UserID:      id.UserID,
		Email:       id.Email,
		DisplayName: id.DisplayName,
		DarkMode:    id.DarkMode,
		OrgID:       id.OrgID,
		OrgName:     id.OrgName,
		RoleKey:     id.RoleKey,
	}
}

// Roles lista el conjunto estático de roles de la aplicación.
func (uc *UserUseCase) Roles(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := uc.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.RoleResponse{Key: r.Key, Description: r.Description})
	}
	return out, nil
}
