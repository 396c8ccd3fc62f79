package dto

// UserCreatedEvent evento "user.created" del proveedor de identidad, ya
// verificado criptográficamente por el boundary HTTP antes de llegar aquí.
type UserCreatedEvent struct {
	Type string               `json:"type"`
	Data UserCreatedEventData `json:"data"`
}

// UserCreatedEventData carga del evento: id externo del principal y atributos.
type UserCreatedEventData struct {
	ID             string         `json:"id"`
	EmailAddresses []EmailAddress `json:"email_addresses"`
	FirstName      *string        `json:"first_name"`
	LastName       *string        `json:"last_name"`
}

// EmailAddress dirección de correo del evento.
type EmailAddress struct {
	EmailAddress string `json:"email_address"`
}

// PrimaryEmail devuelve el primer email del evento o "" si no trae ninguno.
func (d UserCreatedEventData) PrimaryEmail() string {
	if len(d.EmailAddresses) == 0 {
		return ""
	}
	return d.EmailAddresses[0].EmailAddress
}
