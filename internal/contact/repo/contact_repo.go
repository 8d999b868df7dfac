package repo

import (
	"context"
	"errors"

	"github.com/Marco16005/pag-web-web/internal/contact/entity"
	"github.com/Marco16005/pag-web-web/internal/gateway"
	"github.com/Marco16005/pag-web-web/internal/outcome"
)

// ErrNoID is returned when insert_contact_message yields no new id.
var ErrNoID = errors.New("insert_contact_message returned no id")

type ContactRepo struct {
	gw gateway.Gateway
}

func NewContactRepo(gw gateway.Gateway) *ContactRepo {
	return &ContactRepo{gw: gw}
}

// Insert stores a message and returns its id.
func (r *ContactRepo) Insert(ctx context.Context, name, email, message string) (int64, error) {
	var rows []entity.InsertResult
	err := r.gw.Invoke(ctx, &rows, gateway.ProcInsertContact,
		gateway.P("p_name", name),
		gateway.P("p_email", email),
		gateway.P("p_message", message),
	)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 || rows[0].NewID == nil || *rows[0].NewID == 0 {
		return 0, ErrNoID
	}
	return *rows[0].NewID, nil
}

func (r *ContactRepo) List(ctx context.Context) ([]entity.ContactMessage, error) {
	rows := []entity.ContactMessage{}
	if err := r.gw.Invoke(ctx, &rows, gateway.ProcListContactMessages); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ContactRepo) UpdateStatus(ctx context.Context, id int64, status string) (outcome.Sentinel, error) {
	var rows []entity.StatusUpdateResult
	err := r.gw.Invoke(ctx, &rows, gateway.ProcUpdateMessageStatus,
		gateway.P("p_id_contact_message", id),
		gateway.P("p_new_status", status),
	)
	if err != nil {
		return "", err
	}
	raw := ""
	if len(rows) > 0 {
		raw = rows[0].Result
	}
	return outcome.UpdateMessageStatus.Decode(raw)
}
