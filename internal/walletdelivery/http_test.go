package walletdelivery

import (
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

func serve(t *testing.T, service Service, path string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(service)

	engine := gin.New()
	engine.GET("/wallets/:userid", handler.Get)
	engine.GET("/wallets/:userid/transactions", handler.ListTransactions)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	recorder := httptest.NewRecorder()

	engine.ServeHTTP(recorder, req)

	return recorder
}

func TestGetAPI(t *testing.T) {
	testWallet := domain.Wallet{ID: 1, UserID: 1, Balance: "100"}

	testCases := []struct {
		name          string
		path          string
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "InvalidUserID",
			path: "/wallets/abc",
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "WalletNotFound",
			path: "/wallets/100500",
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Eq(int64(100500))).
					Times(1).
					Return(domain.Wallet{}, domain.ErrWalletNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "InternalError",
			path: "/wallets/1",
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Eq(int64(1))).
					Times(1).
					Return(domain.Wallet{}, errorspkg.ErrInternal)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
		{
			name: "OK",
			path: "/wallets/1",
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Eq(int64(1))).
					Times(1).
					Return(testWallet, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got struct {
					Data data `json:"data"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Equal(t, testWallet, got.Data.Wallet)
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

			tc.checkResponse(serve(t, service, tc.path))
		})
	}
}

func TestListTransactionsAPI(t *testing.T) {
	testTransactions := []domain.Transaction{
		{ID: 1, WalletID: 1, Type: domain.Debit, Amount: "70"},
		{ID: 2, WalletID: 1, Type: domain.Credit, Amount: "30"},
	}

	testCases := []struct {
		name          string
		path          string
		buildStubs    func(service *MockService)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "MissingPageParams",
			path: "/wallets/1/transactions",
			buildStubs: func(service *MockService) {
				service.EXPECT().ListTransactions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "PageSizeTooBig",
			path: "/wallets/1/transactions?page_id=1&page_size=500",
			buildStubs: func(service *MockService) {
				service.EXPECT().ListTransactions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "WalletNotFound",
			path: "/wallets/100500/transactions?page_id=1&page_size=10",
			buildStubs: func(service *MockService) {
				service.EXPECT().ListTransactions(gomock.Any(), gomock.Eq(int64(100500)), gomock.Eq(int32(10)), gomock.Eq(int32(1))).
					Times(1).
					Return(nil, domain.ErrWalletNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "OK",
			path: "/wallets/1/transactions?page_id=1&page_size=10",
			buildStubs: func(service *MockService) {
				service.EXPECT().ListTransactions(gomock.Any(), gomock.Eq(int64(1)), gomock.Eq(int32(10)), gomock.Eq(int32(1))).
					Times(1).
					Return(testTransactions, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got struct {
					Data dataTransactions `json:"data"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Equal(t, testTransactions[0].ID, got.Data.Transactions[0].ID)
				require.Len(t, got.Data.Transactions, 2)
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

			tc.checkResponse(serve(t, service, tc.path))
		})
	}
}
