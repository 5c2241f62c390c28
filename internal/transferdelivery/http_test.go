package transferdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/pkg/errorspkg"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.ReleaseMode)
	os.Exit(m.Run())
}

func serveJSON(t *testing.T, service Service, method, path string, requestBody gin.H) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(service)

	engine := gin.New()
	engine.POST("/deposits", handler.Deposit)
	engine.POST("/transfers", handler.Transfer)

	body, err := json.Marshal(requestBody)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	recorder := httptest.NewRecorder()

	engine.ServeHTTP(recorder, req)

	return recorder
}

func TestDepositAPI(t *testing.T) {
	depositResult := domain.TransferTxResult{
		DebitTransaction: domain.Transaction{ID: 10, WalletID: 1, Type: domain.Debit, Amount: "100"},
		ToWallet:         domain.Wallet{ID: 1, UserID: 1, Balance: "100"},
	}

	testCases := []struct {
		name          string
		requestBody   gin.H
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "MissingUserID",
			requestBody: gin.H{
				"amount": "100",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Deposit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "MissingAmount",
			requestBody: gin.H{
				"user_id": 1,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Deposit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "UnparseableAmount",
			requestBody: gin.H{
				"user_id": 1,
				"amount":  "one hundred",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Deposit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "InvalidAmount",
			requestBody: gin.H{
				"user_id": 1,
				"amount":  "-1",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Deposit(gomock.Any(), gomock.Eq(int64(1)), gomock.Eq("-1")).
					Times(1).
					Return(domain.TransferTxResult{}, domain.ErrInvalidAmount)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "WalletNotFound",
			requestBody: gin.H{
				"user_id": 100500,
				"amount":  "100",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Deposit(gomock.Any(), gomock.Eq(int64(100500)), gomock.Eq("100")).
					Times(1).
					Return(domain.TransferTxResult{}, domain.ErrWalletNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "Unavailable",
			requestBody: gin.H{
				"user_id": 1,
				"amount":  "100",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Deposit(gomock.Any(), gomock.Eq(int64(1)), gomock.Eq("100")).
					Times(1).
					Return(domain.TransferTxResult{}, errorspkg.ErrUnavailable)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusServiceUnavailable, recorder.Code)
			},
		},
		{
			name: "InternalError",
			requestBody: gin.H{
				"user_id": 1,
				"amount":  "100",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Deposit(gomock.Any(), gomock.Eq(int64(1)), gomock.Eq("100")).
					Times(1).
					Return(domain.TransferTxResult{}, errorspkg.ErrInternal)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
		{
			name: "OK",
			requestBody: gin.H{
				"user_id": 1,
				"amount":  "100",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Deposit(gomock.Any(), gomock.Eq(int64(1)), gomock.Eq("100")).
					Times(1).
					Return(depositResult, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got struct {
					Data data `json:"data"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Equal(t, depositResult.DebitTransaction.ID, got.Data.DebitTransactionID)
				require.Nil(t, got.Data.CreditTransactionID)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			recorder := serveJSON(t, service, http.MethodPost, "/deposits", tc.requestBody)
			tc.checkResponse(recorder)
		})
	}
}

func TestTransferAPI(t *testing.T) {
	creditTransaction := domain.Transaction{ID: 21, WalletID: 1, Type: domain.Credit, Amount: "20"}
	fromWallet := domain.Wallet{ID: 1, UserID: 1, Balance: "60"}

	transferResult := domain.TransferTxResult{
		DebitTransaction:  domain.Transaction{ID: 20, WalletID: 2, Type: domain.Debit, Amount: "20"},
		CreditTransaction: &creditTransaction,
		ToWallet:          domain.Wallet{ID: 2, UserID: 2, Balance: "20"},
		FromWallet:        &fromWallet,
	}

	testCases := []struct {
		name          string
		requestBody   gin.H
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "MissingFromUserID",
			requestBody: gin.H{
				"to_user_id": 2,
				"amount":     "20",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "SameParty",
			requestBody: gin.H{
				"from_user_id": 1,
				"to_user_id":   1,
				"amount":       "20",
			},
			buildStubs: func(service *MockService) {
				arg := domain.CreateTransferParams{FromUserID: 1, ToUserID: 1, Amount: "20"}

				service.EXPECT().Transfer(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(domain.TransferTxResult{}, domain.ErrSameParty)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "InsufficientFunds",
			requestBody: gin.H{
				"from_user_id": 1,
				"to_user_id":   2,
				"amount":       "100",
			},
			buildStubs: func(service *MockService) {
				arg := domain.CreateTransferParams{FromUserID: 1, ToUserID: 2, Amount: "100"}

				service.EXPECT().Transfer(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(domain.TransferTxResult{}, domain.ErrInsufficientFunds)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "WalletNotFound",
			requestBody: gin.H{
				"from_user_id": 1,
				"to_user_id":   100500,
				"amount":       "20",
			},
			buildStubs: func(service *MockService) {
				arg := domain.CreateTransferParams{FromUserID: 1, ToUserID: 100500, Amount: "20"}

				service.EXPECT().Transfer(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(domain.TransferTxResult{}, domain.ErrWalletNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "OK",
			requestBody: gin.H{
				"from_user_id": 1,
				"to_user_id":   2,
				"amount":       "20",
			},
			buildStubs: func(service *MockService) {
				arg := domain.CreateTransferParams{FromUserID: 1, ToUserID: 2, Amount: "20"}

				service.EXPECT().Transfer(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(transferResult, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got struct {
					Data data `json:"data"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Equal(t, transferResult.DebitTransaction.ID, got.Data.DebitTransactionID)
				require.NotNil(t, got.Data.CreditTransactionID)
				require.Equal(t, transferResult.CreditTransaction.ID, *got.Data.CreditTransactionID)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			recorder := serveJSON(t, service, http.MethodPost, "/transfers", tc.requestBody)
			tc.checkResponse(recorder)
		})
	}
}
