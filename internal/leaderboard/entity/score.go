package entity

type Entry struct {
	Rank       int64  `db:"rank" json:"rank"`
	Username   string `db:"nombre_usuario" json:"nombre_usuario"`
	TotalScore int64  `db:"puntuacion_total" json:"puntuacion_total"`
}

type UserScore struct {
	TotalScore int64 `db:"puntuacion_total" json:"puntuacion_total"`
}
