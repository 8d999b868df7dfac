package entity

import "time"

// User is a row of get_all_users_admin.
type User struct {
	ID           int64     `db:"id_usuario" json:"id_usuario"`
	Username     string    `db:"nombre_usuario" json:"nombre_usuario"`
	Email        string    `db:"correo" json:"correo"`
	Role         string    `db:"rol" json:"rol"`
	RegisteredAt time.Time `db:"fecha_registro" json:"fecha_registro"`
}

// Credentials is the row returned by login_usuario. The hash never leaves the service.
type Credentials struct {
	ID           int64  `db:"id_usuario"`
	Username     string `db:"nombre_usuario"`
	Email        string `db:"correo"`
	Role         string `db:"rol"`
	PasswordHash string `db:"contrasena_hash"`
}

// AuthView is the projection returned to a client after login.
type AuthView struct {
	ID    int64  `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"correo"`
	Role  string `json:"rol"`
}

// Registration carries the already-validated fields for registrar_usuario.
type Registration struct {
	Email        string
	Username     string
	PasswordHash string
	Gender       string
	BirthDate    string // YYYY-MM-DD
}

// Update carries the fields accepted by actualizar_usuario_admin.
type Update struct {
	ID       int64
	Username string
	Email    string
	Role     string
}

// StatusRow is the single-column result of the status-returning procedures.
type StatusRow struct {
	Status string `db:"status"`
}
