package domain

import "time"

// Customer represents a registered customer record.
type Customer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	CPF          string    `json:"cpf,omitempty"`
	BirthDate    string    `json:"birthDate,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// CustomerPatch carries a partial update. Nil fields are left unchanged.
type CustomerPatch struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	CPF       *string `json:"cpf"`
	BirthDate *string `json:"birthDate"`
}
