package repo

import (
	"context"
	"database/sql"

	"github.com/Marco16005/pag-web-web/internal/gateway"
	"github.com/Marco16005/pag-web-web/internal/outcome"
	"github.com/Marco16005/pag-web-web/internal/user/entity"
)

// UserRepo calls the user procedures through the gateway.
type UserRepo struct {
	gw gateway.Gateway
}

func NewUserRepo(gw gateway.Gateway) *UserRepo { return &UserRepo{gw: gw} }

// Register creates a user and returns the decoded registration sentinel.
func (r *UserRepo) Register(ctx context.Context, reg entity.Registration) (outcome.Sentinel, error) {
	var rows []entity.StatusRow
	err := r.gw.Invoke(ctx, &rows, gateway.ProcRegisterUser,
		gateway.P("p_correo", reg.Email),
		gateway.P("p_nombre_usuario", reg.Username),
		gateway.P("p_contrasena_hash", reg.PasswordHash),
		gateway.P("p_genero", reg.Gender),
		gateway.P("p_fecha_nacimiento", reg.BirthDate),
	)
	if err != nil {
		return "", err
	}
	return outcome.Register.Decode(firstStatus(rows))
}

// GetByEmail returns the login row for email or sql.ErrNoRows.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.Credentials, error) {
	var rows []entity.Credentials
	if err := r.gw.Invoke(ctx, &rows, gateway.ProcLoginUser, gateway.P("p_correo_param", email)); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, sql.ErrNoRows
	}
	return &rows[0], nil
}

func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	rows := []entity.User{}
	if err := r.gw.Invoke(ctx, &rows, gateway.ProcListUsers); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *UserRepo) Update(ctx context.Context, u entity.Update) (outcome.Sentinel, error) {
	var rows []entity.StatusRow
	err := r.gw.Invoke(ctx, &rows, gateway.ProcUpdateUser,
		gateway.P("p_id_usuario", u.ID),
		gateway.P("p_nombre_usuario", u.Username),
		gateway.P("p_correo", u.Email),
		gateway.P("p_rol", u.Role),
	)
	if err != nil {
		return "", err
	}
	return outcome.UpdateUser.Decode(firstStatus(rows))
}

func (r *UserRepo) Delete(ctx context.Context, id int64) (outcome.Sentinel, error) {
	var rows []entity.StatusRow
	if err := r.gw.Invoke(ctx, &rows, gateway.ProcDeleteUser, gateway.P("p_id_usuario", id)); err != nil {
		return "", err
	}
	return outcome.DeleteUser.Decode(firstStatus(rows))
}

func firstStatus(rows []entity.StatusRow) string {
	if len(rows) == 0 {
		return ""
	}
	return rows[0].Status
}
