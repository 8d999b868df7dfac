package repo

import (
	"context"

	"github.com/Marco16005/pag-web-web/internal/gateway"
	"github.com/Marco16005/pag-web-web/internal/leaderboard/entity"
)

type LeaderboardRepo struct {
	gw gateway.Gateway
}

func NewLeaderboardRepo(gw gateway.Gateway) *LeaderboardRepo {
	return &LeaderboardRepo{gw: gw}
}

// Top returns the best limit players, ranked by the store.
func (r *LeaderboardRepo) Top(ctx context.Context, limit int) ([]entity.Entry, error) {
	rows := []entity.Entry{}
	if err := r.gw.Invoke(ctx, &rows, gateway.ProcGlobalLeaderboard, gateway.P("p_limit", limit)); err != nil {
		return nil, err
	}
	return rows, nil
}

// UserScore returns the user's total, or a zero score when the store has no row.
func (r *LeaderboardRepo) UserScore(ctx context.Context, userID int64) (entity.UserScore, error) {
	var rows []entity.UserScore
	if err := r.gw.Invoke(ctx, &rows, gateway.ProcUserScore, gateway.P("p_user_id", userID)); err != nil {
		return entity.UserScore{}, err
	}
	if len(rows) == 0 {
		return entity.UserScore{}, nil
	}
	return rows[0], nil
}
