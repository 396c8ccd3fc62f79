package dto

import "time"

// VerifyInvitationRequest verificación pública de (email, código).
type VerifyInvitationRequest struct {
	Email      string `json:"email" validate:"required,email"`
	InviteCode string `json:"inviteCode" validate:"required,min=1"`
}

// VerifyInvitationResponse resultado de una verificación exitosa.
type VerifyInvitationResponse struct {
	OK      bool   `json:"ok"`
	RoleKey string `json:"role_key"`
	OrgID   string `json:"org_id"`
}

// CreateInvitationRequest alta de invitación (solo admin).
type CreateInvitationRequest struct {
	Email   string `json:"email" validate:"required,email"`
	RoleKey string `json:"role_key" validate:"required"`
}

// InvitationResponse invitación creada. El código se devuelve una sola vez.
type InvitationResponse struct {
	ID         string    `json:"id"`
	OrgID      string    `json:"org_id"`
	Email      string    `json:"email"`
	RoleKey    string    `json:"role_key"`
	InviteCode string    `json:"invite_code"`
	EmailSent  bool      `json:"email_sent"`
	CreatedAt  time.Time `json:"created_at"`
}

// AcceptInvitationRequest aceptación autenticada: reclama la invitación y
// otorga la membresía en una sola transacción.
type AcceptInvitationRequest struct {
	InviteCode string `json:"inviteCode" validate:"required,min=1"`
}

// AcceptInvitationResponse membresía otorgada tras el claim.
type AcceptInvitationResponse struct {
	OrgID   string `json:"org_id"`
	RoleKey string `json:"role_key"`
}
