package user

type Usuario struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    Rol    `json:"rol"`
	Activo bool   `json:"activo"`
}
