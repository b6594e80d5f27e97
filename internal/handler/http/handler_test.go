package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/velikanov/groupsync/internal/config"
	"github.com/velikanov/groupsync/internal/logger"
	"github.com/velikanov/groupsync/internal/mock"
	"github.com/velikanov/groupsync/internal/service"
	"github.com/velikanov/groupsync/internal/utils"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "groupsync-test"
)

type testMocks struct {
	meetups     *mock.MockMeetupService
	discussions *mock.MockDiscussionService
	comments    *mock.MockCommentService
	memberships *mock.MockMembershipService
}

// newTestHandler wires a Handler over mocked services.
func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, testMocks) {
	t.Helper()

	m := testMocks{
		meetups:     mock.NewMockMeetupService(ctrl),
		discussions: mock.NewMockDiscussionService(ctrl),
		comments:    mock.NewMockCommentService(ctrl),
		memberships: mock.NewMockMembershipService(ctrl),
	}
	services := &service.Services{
		MeetupService:     m.meetups,
		DiscussionService: m.discussions,
		CommentService:    m.comments,
		MembershipService: m.memberships,
	}
	cfg := config.App{
		TokenSignKey: testSignKey,
		TokenIssuer:  testIssuer,
		Version:      "test",
	}
	return NewHandler(services, cfg, logger.Nop()), m
}

// bearerFor mints a token the auth middleware accepts for the given user.
func bearerFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, userID, time.Hour, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(t *testing.T, h *Handler, method, target, authorization, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ── auth middleware ──────────────────────────────────────────────────────────

func TestRoutes_MissingAuthorizationHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	rec := doRequest(t, h, http.MethodGet, "/api/groups/g1/meetups", "", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	token, err := utils.GenerateJWTToken(testIssuer, "u1", -time.Hour, testSignKey)
	require.NoError(t, err)

	rec := doRequest(t, h, http.MethodGet, "/api/groups/g1/meetups", "Bearer "+token, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_WrongIssuerToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	token, err := utils.GenerateJWTToken("somebody-else", "u1", time.Hour, testSignKey)
	require.NoError(t, err)

	rec := doRequest(t, h, http.MethodGet, "/api/groups/g1/meetups", "Bearer "+token, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_HealthNeedsNoAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	rec := doRequest(t, h, http.MethodGet, "/api/health", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"ok"`)
}
