package entity

import "time"

// Statistic is a row of get_statistics_admin.
type Statistic struct {
	UserID           int64  `db:"id_usuario" json:"id_usuario"`
	Username         string `db:"nombre_usuario" json:"nombre_usuario"`
	MissionsDone     int64  `db:"misiones_completadas" json:"misiones_completadas"`
	ItemsObtained    int64  `db:"objetos_obtenidos" json:"objetos_obtenidos"`
	EnemiesDefeated  int64  `db:"enemigos_neutralizados" json:"enemigos_neutralizados"`
	TotalPlaySeconds int64  `db:"tiempo_total_juego" json:"tiempo_total_juego"`
}

// LogEntry is a row of sp_get_log_entries. Snapshots are opaque JSON strings.
type LogEntry struct {
	ID              int64     `db:"id_log" json:"id_log"`
	Table           string    `db:"nombre_tabla_afectada" json:"nombre_tabla_afectada"`
	RowID           *string   `db:"id_registro_afectado" json:"id_registro_afectado"`
	ModifiedBy      *string   `db:"nombre_usuario_modificador" json:"nombre_usuario_modificador"`
	OriginScreen    *string   `db:"pantalla_origen" json:"pantalla_origen"`
	Description     *string   `db:"descripcion_accion" json:"descripcion_accion"`
	Operation       string    `db:"tipo_operacion" json:"tipo_operacion"`
	OperatedAt      time.Time `db:"fecha_operacion" json:"fecha_operacion"`
	OperationStatus *string   `db:"estatus_operacion" json:"estatus_operacion"`
	OldData         *string   `db:"datos_viejos" json:"datos_viejos"`
	NewData         *string   `db:"datos_nuevos" json:"datos_nuevos"`
}

// LogFilter narrows sp_get_log_entries. Nil fields are sent as NULL.
type LogFilter struct {
	Table     *string
	Operation *string
	Start     *time.Time
	End       *time.Time
	Limit     int
	Offset    int
}
