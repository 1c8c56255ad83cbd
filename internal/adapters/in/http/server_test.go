package http_test

import (
	"encoding/json"
	"log/slog"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	httpadapter "github.com/LONJEZ/Delivery-app/internal/adapters/in/http"
	"github.com/LONJEZ/Delivery-app/internal/adapters/out/memory"
	"github.com/LONJEZ/Delivery-app/internal/core/application/registry"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/domain/services"
	"github.com/LONJEZ/Delivery-app/internal/generated/servers"
	"github.com/LONJEZ/Delivery-app/internal/pkg/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

type fixture struct {
	e             *echo.Echo
	operatorToken string
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	reg := registry.New(
		memory.NewUnitOfWorkFactory(memory.NewStore()),
		memory.NewTrackingCache(),
		services.DefaultDispatchThreshold,
		logger,
	)

	verifier, err := auth.NewVerifier(secret)
	require.NoError(t, err)
	issuer, err := auth.NewIssuer(secret, time.Hour)
	require.NoError(t, err)
	token, err := issuer.Issue("ops", auth.RoleOperator)
	require.NoError(t, err)

	e, err := httpadapter.NewRouter(reg, verifier, logger)
	require.NoError(t, err)

	return fixture{e: e, operatorToken: token}
}

func (f fixture) do(t *testing.T, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func (f fixture) register(t *testing.T, charge uint64) uint64 {
	t.Helper()

	body := `{"sender":{"name":"joe","phone":123},"receiver":{"name":"doe","phone":456},` +
		`"deliveryCharge":` + strconv.FormatUint(charge, 10) +
		`,"destination":"juja","isFragile":false,"dateSent":"2022-06-10"}`
	rec := f.do(t, http.MethodPost, "/api/v1/parcels", body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created servers.ParcelCreated
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created.Id
}

func units(n int64) string {
	return new(big.Int).Mul(big.NewInt(n), kernel.DepositForCharge(1).Amount()).String()
}

func parcelPath(id uint64, suffix string) string {
	return "/api/v1/parcels/" + strconv.FormatUint(id, 10) + suffix
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestRegister_AssignsSequentialIDs(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, uint64(1), f.register(t, 5))
	assert.Equal(t, uint64(2), f.register(t, 20))
}

func TestRegister_RejectsInvalidBody(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "zero charge", body: `{"sender":{"name":"a","phone":1},"receiver":{"name":"b","phone":2},"deliveryCharge":0,"destination":"x","dateSent":"d"}`},
		{name: "missing destination", body: `{"sender":{"name":"a","phone":1},"receiver":{"name":"b","phone":2},"deliveryCharge":3,"dateSent":"d"}`},
		{name: "not json", body: `nope`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/api/v1/parcels", tt.body, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
		})
	}
}

func TestScenario_PayDispatchTrack(t *testing.T) {
	f := newFixture(t)
	id := f.register(t, 15)

	rec := f.do(t, http.MethodPost, parcelPath(id, "/dispatch"), `{"location":"depot"}`, f.operatorToken)
	assert.Equal(t, http.StatusConflict, rec.Code, "15 owed is above the threshold")

	rec = f.do(t, http.MethodPost, parcelPath(id, "/payments"), `{"amount":"`+units(5)+`"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var outcome servers.PaymentOutcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
	assert.Equal(t, servers.PaymentOutcome{Applied: 5, Remaining: 10, ReadyForDispatch: false}, outcome)

	rec = f.do(t, http.MethodPost, parcelPath(id, "/dispatch"), `{"location":"depot"}`, f.operatorToken)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodPost, parcelPath(id, "/dispatch"), `{"location":"depot"}`, f.operatorToken)
	assert.Equal(t, http.StatusConflict, rec.Code, "second dispatch is rejected")

	rec = f.do(t, http.MethodGet, parcelPath(id, "/tracking?phone=123"), "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var tracking servers.Tracking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tracking))
	assert.Equal(t, servers.Tracking{Location: "depot", HasArrived: false}, tracking)

	rec = f.do(t, http.MethodGet, parcelPath(id, "/tracking?phone=999"), "", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NotContains(t, rec.Body.String(), "depot")

	rec = f.do(t, http.MethodPut, parcelPath(id, "/location"), `{"location":"nairobi","hasArrived":true}`, f.operatorToken)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, parcelPath(id, "/tracking?phone=123"), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tracking))
	assert.Equal(t, servers.Tracking{Location: "nairobi", HasArrived: true}, tracking)

	rec = f.do(t, http.MethodPut, parcelPath(id, "/location"), `{"location":"thika"}`, f.operatorToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "an arrived tracker does not move")
}

func TestTrack_NotDispatched(t *testing.T) {
	f := newFixture(t)
	id := f.register(t, 5)

	rec := f.do(t, http.MethodGet, parcelPath(id, "/tracking?phone=123"), "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPay_UnknownParcel(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, parcelPath(42, "/payments"), `{"amount":"`+units(1)+`"}`, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decodeError(t, rec).Code)
}

func TestPay_RejectsZeroAndMalformedAmounts(t *testing.T) {
	f := newFixture(t)
	id := f.register(t, 5)

	for _, amount := range []string{"0", "-3", "12abc"} {
		rec := f.do(t, http.MethodPost, parcelPath(id, "/payments"), `{"amount":"`+amount+`"}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, amount)
	}
}

func TestOperatorRoutes_RequireToken(t *testing.T) {
	f := newFixture(t)
	id := f.register(t, 5)

	issuer, err := auth.NewIssuer(secret, time.Hour)
	require.NoError(t, err)
	customer, err := issuer.Issue("someone", "customer")
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", customer} {
		rec := f.do(t, http.MethodPost, parcelPath(id, "/dispatch"), `{"location":"depot"}`, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "token %q", token)

		rec = f.do(t, http.MethodGet, parcelPath(id, ""), "", token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "token %q", token)
	}
}

func TestGetParcelAndLedger(t *testing.T) {
	f := newFixture(t)
	id := f.register(t, 30)

	f.do(t, http.MethodPost, parcelPath(id, "/payments"), `{"amount":"`+units(10)+`"}`, "")
	f.do(t, http.MethodPost, parcelPath(id, "/payments"), `{"amount":"`+units(50)+`"}`, "")

	rec := f.do(t, http.MethodGet, parcelPath(id, ""), "", f.operatorToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var p servers.Parcel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, id, p.Id)
	assert.Equal(t, uint64(0), p.DeliveryCharge)
	assert.Equal(t, servers.Paid, p.Status)
	assert.Equal(t, servers.Contact{Name: "joe", Phone: 123}, p.Sender)

	rec = f.do(t, http.MethodGet, parcelPath(id, "/payments"), "", f.operatorToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var payments []servers.Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payments))
	require.Len(t, payments, 2)
	assert.Equal(t, uint64(10), payments[0].Applied)
	assert.Equal(t, uint64(20), payments[0].Remaining)
	assert.Equal(t, uint64(20), payments[1].Applied, "overpayment is clamped")
	assert.Equal(t, units(50), payments[1].Amount)
}

func TestInvalidParcelID(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/parcels/0/tracking?phone=1", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/parcels/abc/tracking?phone=1", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSwaggerUI(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/swagger/doc.json", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/v1/parcels")
}
