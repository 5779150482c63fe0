package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bank-ledger/internal/adapter/http/dto"
	"bank-ledger/internal/core/domain"
	"bank-ledger/internal/core/ports"
	"bank-ledger/internal/core/ports/mocks"
	"bank-ledger/pkg/apperror"
	"bank-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var (
	testAccountID   = uuid.MustParse("5d9ccd9d-7050-47ab-adcf-e0fe89b913c5")
	testOperationID = uuid.MustParse("aa7ad925-59f1-43db-bae7-a0c2221b8a6a")
	testDate        = time.Date(2023, time.July, 3, 21, 43, 0, 0, time.UTC)
)

func newRouter(svc ports.BankAccountService, tokenSvc ports.TokenService) *gin.Engine {
	return SetupRouter(RouterDeps{
		AccountSvc: svc,
		TokenSvc:   tokenSvc,
		Logger:     zerolog.Nop(),
	})
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeOperation(t *testing.T, w *httptest.ResponseRecorder) dto.OperationResponse {
	t.Helper()
	var envelope struct {
		Data dto.OperationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()
	var resp response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func amountMatcher(s string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		d, ok := x.(decimal.Decimal)
		return ok && domain.FormatDecimal(d) == s
	})
}

// --- Deposit ---

func TestDeposit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBankAccountService(ctrl)

	svc.EXPECT().PerformDeposit(gomock.Any(), testAccountID, amountMatcher("500.00")).
		Return(&domain.Operation{
			ID:            testOperationID,
			AccountID:     testAccountID,
			Amount:        decimal.RequireFromString("500.00"),
			Balance:       decimal.RequireFromString("500.00"),
			Date:          testDate,
			OperationType: domain.OperationTypeDeposit,
		}, nil)

	w := doRequest(newRouter(svc, nil), http.MethodPost,
		"/api/v1/accounts/"+testAccountID.String()+"/deposits", `{"amount":"500.00"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	op := decodeOperation(t, w)
	assert.Equal(t, testOperationID.String(), op.ID)
	assert.Equal(t, "DEPOSIT", op.OperationType)
	assert.Equal(t, "500.00", op.Amount)
	assert.Equal(t, "500.00", op.Balance)
	assert.Equal(t, "2023-07-03T21:43:00Z", op.Date)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestDeposit_InvalidAccountID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBankAccountService(ctrl)

	w := doRequest(newRouter(svc, nil), http.MethodPost,
		"/api/v1/accounts/not-a-uuid/deposits", `{"amount":"10"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeInvalidAmount, decodeError(t, w).ErrorCode)
}

func TestDeposit_MalformedBody(t *testing.T) {
	bodies := map[string]string{
		"empty":       ``,
		"not json":    `amount=10`,
		"missing":     `{}`,
		"number type": `{"amount":10}`,
		"exponent":    `{"amount":"1e3"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockBankAccountService(ctrl)

			w := doRequest(newRouter(svc, nil), http.MethodPost,
				"/api/v1/accounts/"+testAccountID.String()+"/deposits", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, apperror.CodeInvalidAmount, decodeError(t, w).ErrorCode)
		})
	}
}

func TestDeposit_NonPositiveAmountFromService(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBankAccountService(ctrl)

	svc.EXPECT().PerformDeposit(gomock.Any(), testAccountID, amountMatcher("0")).
		Return(nil, apperror.ErrInvalidAmount())

	w := doRequest(newRouter(svc, nil), http.MethodPost,
		"/api/v1/accounts/"+testAccountID.String()+"/deposits", `{"amount":"0"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeInvalidAmount, decodeError(t, w).ErrorCode)
}

func TestDeposit_AccountNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBankAccountService(ctrl)

	svc.EXPECT().PerformDeposit(gomock.Any(), testAccountID, gomock.Any()).
		Return(nil, apperror.ErrAccountNotFound())

	w := doRequest(newRouter(svc, nil), http.MethodPost,
		"/api/v1/accounts/"+testAccountID.String()+"/deposits", `{"amount":"10"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperror.CodeAccountNotFound, decodeError(t, w).ErrorCode)
}

func TestDeposit_UnclassifiedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBankAccountService(ctrl)

	svc.EXPECT().PerformDeposit(gomock.Any(), testAccountID, gomock.Any()).
		Return(nil, errors.New("disk on fire"))

	w := doRequest(newRouter(svc, nil), http.MethodPost,
		"/api/v1/accounts/"+testAccountID.String()+"/deposits", `{"amount":"10"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, apperror.CodeDatabase, resp.ErrorCode)
	assert.NotContains(t, resp.Message, "disk on fire")
}

// --- Withdraw ---

func TestWithdraw_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBankAccountService(ctrl)

	svc.EXPECT().PerformWithdrawal(gomock.Any(), testAccountID, amountMatcher("500.0")).
		Return(&domain.Operation{
			ID:            testOperationID,
			AccountID:     testAccountID,
			Amount:        decimal.RequireFromString("500.0"),
			Balance:       decimal.RequireFromString("1000.0"),
			Date:          testDate,
			OperationType: domain.OperationTypeWithdrawal,
		}, nil)

	w := doRequest(newRouter(svc, nil), http.MethodPost,
		"/api/v1/accounts/"+testAccountID.String()+"/withdrawals", `{"amount":"500.0"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	op := decodeOperation(t, w)
	assert.Equal(t, "WITHDRAWAL", op.OperationType)
	assert.Equal(t, "500.0", op.Amount)
	assert.Equal(t, "1000.0", op.Balance)
}

func TestWithdraw_InsufficientBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBankAccountService(ctrl)

	svc.EXPECT().PerformWithdrawal(gomock.Any(), testAccountID, gomock.Any()).
		Return(nil, apperror.ErrInsufficientBalance())

	w := doRequest(newRouter(svc, nil), http.MethodPost,
		"/api/v1/accounts/"+testAccountID.String()+"/withdrawals", `{"amount":"1000.1"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, apperror.CodeInsufficientBalance, resp.ErrorCode)
	assert.Equal(t, "Insufficient balance", resp.Message)
}

func TestWithdraw_LockTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBankAccountService(ctrl)

	svc.EXPECT().PerformWithdrawal(gomock.Any(), testAccountID, gomock.Any()).
		Return(nil, apperror.ErrLockTimeout(context.DeadlineExceeded))

	w := doRequest(newRouter(svc, nil), http.MethodPost,
		"/api/v1/accounts/"+testAccountID.String()+"/withdrawals", `{"amount":"1"}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, apperror.CodeLockTimeout, decodeError(t, w).ErrorCode)
}

// --- History ---

func TestHistory_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBankAccountService(ctrl)

	statement := "History for account " + testAccountID.String() + "\n" +
		"--------------------------------------------------------\n" +
		"Balance: 0\n" +
		"--------------------------------------------------------\n"
	svc.EXPECT().DisplayHistory(gomock.Any(), testAccountID).Return(statement, nil)

	w := doRequest(newRouter(svc, nil), http.MethodGet,
		"/api/v1/accounts/"+testAccountID.String()+"/history", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, statement, w.Body.String())
}

func TestHistory_AccountNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBankAccountService(ctrl)

	svc.EXPECT().DisplayHistory(gomock.Any(), testAccountID).Return("", apperror.ErrAccountNotFound())

	w := doRequest(newRouter(svc, nil), http.MethodGet,
		"/api/v1/accounts/"+testAccountID.String()+"/history", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperror.CodeAccountNotFound, decodeError(t, w).ErrorCode)
}

// --- Auth ---

func TestRouter_RequiresTokenWhenConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBankAccountService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	w := doRequest(newRouter(svc, tokenSvc), http.MethodGet,
		"/api/v1/accounts/"+testAccountID.String()+"/history", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_AcceptsValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBankAccountService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	tokenSvc.EXPECT().Validate("good-token").Return(&ports.TokenClaims{Subject: uuid.New()}, nil)
	svc.EXPECT().DisplayHistory(gomock.Any(), testAccountID).Return("statement", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+testAccountID.String()+"/history", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	newRouter(svc, tokenSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "statement", w.Body.String())
}

// --- Health ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(context.Context) error { return s.err }
func (s stubChecker) Name() string { return s.name }

func TestHealthCheck_AllHealthy(t *testing.T) {
	r := gin.New()
	r.GET("/health", HealthCheck(stubChecker{name: "postgresql"}, stubChecker{name: "redis"}))

	w := doRequest(r, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "healthy", resp.Dependencies["redis"].Status)
}

func TestHealthCheck_Degraded(t *testing.T) {
	r := gin.New()
	r.GET("/health", HealthCheck(stubChecker{name: "postgresql", err: errors.New("connection refused")}))

	w := doRequest(r, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "connection refused", resp.Dependencies["postgresql"].Error)
}

func TestHealthCheck_NoDependencies(t *testing.T) {
	w := doRequest(newRouter(nil, nil), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
