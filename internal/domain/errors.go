package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrNoOrganizationAccess = errors.New("usuario sin membresía en ninguna organización")
	ErrForbidden            = errors.New("acceso denegado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrInvitationInvalid    = errors.New("invitación inválida o ya consumida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrConflict             = errors.New("conflicto con el estado actual")
)
