package leaderboard

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Marco16005/pag-web-web/internal/gateway"
	"github.com/Marco16005/pag-web-web/internal/gateway/gatewaytest"
	"github.com/Marco16005/pag-web-web/internal/leaderboard/entity"
	"github.com/Marco16005/pag-web-web/internal/leaderboard/repo"
)

func serve(t *testing.T, stub *gatewaytest.Stub, path string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(repo.NewLeaderboardRepo(stub), zaptest.NewLogger(t).Sugar())
	r := chi.NewRouter()
	r.Get("/leaderboard/global", h.Global)
	r.Get("/leaderboard/user/{userId}", h.UserScore)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestGlobalPassesFixedLimit(t *testing.T) {
	stub := gatewaytest.New().On(gateway.ProcGlobalLeaderboard, gatewaytest.Rows([]entity.Entry{
		{Rank: 1, Username: "ana", TotalScore: 900},
		{Rank: 2, Username: "leo", TotalScore: 750},
	}))

	rec := serve(t, stub, "/leaderboard/global")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"rank":1,"nombre_usuario":"ana","puntuacion_total":900},{"rank":2,"nombre_usuario":"leo","puntuacion_total":750}]`, rec.Body.String())
	assert.Equal(t, GlobalLimit, stub.Calls()[0].Param("p_limit"))
}

func TestGlobalEmptyIsArray(t *testing.T) {
	stub := gatewaytest.New().On(gateway.ProcGlobalLeaderboard, gatewaytest.Rows([]entity.Entry{}))
	rec := serve(t, stub, "/leaderboard/global")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGlobalFailure(t *testing.T) {
	stub := gatewaytest.New().On(gateway.ProcGlobalLeaderboard, gatewaytest.Fail(errors.New("down")))
	rec := serve(t, stub, "/leaderboard/global")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Failed to fetch global leaderboard."}`, rec.Body.String())
}

func TestUserScoreDefaultsToZero(t *testing.T) {
	stub := gatewaytest.New().On(gateway.ProcUserScore, gatewaytest.Rows([]entity.UserScore{}))

	rec := serve(t, stub, "/leaderboard/user/42")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"puntuacion_total":0}`, rec.Body.String())
	assert.Equal(t, int64(42), stub.Calls()[0].Param("p_user_id"))
}

func TestUserScoreReturnsRow(t *testing.T) {
	stub := gatewaytest.New().On(gateway.ProcUserScore, gatewaytest.Rows([]entity.UserScore{{TotalScore: 1234}}))
	rec := serve(t, stub, "/leaderboard/user/7")
	assert.JSONEq(t, `{"puntuacion_total":1234}`, rec.Body.String())
}

func TestUserScoreRejectsNonNumericID(t *testing.T) {
	stub := gatewaytest.New()
	rec := serve(t, stub, "/leaderboard/user/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid user ID format."}`, rec.Body.String())
	assert.Equal(t, 0, stub.Count(""))
}

func TestUserScoreFailure(t *testing.T) {
	stub := gatewaytest.New().On(gateway.ProcUserScore, gatewaytest.Fail(errors.New("down")))
	rec := serve(t, stub, "/leaderboard/user/9")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Failed to fetch score for user 9."}`, rec.Body.String())
}
