package repository

import (
	"context"

	"github.com/mdmgroup/inventory-api/internal/domain/entity"
)

// InvitationRepository define el puerto de persistencia para Invitation (DIP).
type InvitationRepository interface {
	Create(ctx context.Context, inv *entity.Invitation) error
	// FindValid busca la invitación con código y email exactos y sin consumir.
	// Devuelve nil si no hay fila (código inexistente, email distinto o ya usada).
	// Solo lectura: nunca consume.
	FindValid(ctx context.Context, email, code string) (*entity.Invitation, error)
	// FindValidByEmail busca una invitación sin consumir para el email
	// (resolución de tenant en el aprovisionamiento). Devuelve nil si no hay.
	FindValidByEmail(ctx context.Context, email string) (*entity.Invitation, error)
	// Claim consume la invitación de forma atómica: un único UPDATE condicional
	// sobre used_at (compare-and-swap). Devuelve la invitación reclamada o nil
	// si ninguna fila calificaba; dos claims concurrentes nunca ganan ambos.
	Claim(ctx context.Context, email, code string) (*entity.Invitation, error)
}
