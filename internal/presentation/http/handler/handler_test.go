package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/application/service"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/internal/domain/repository/mocks"
	"github.com/sangkips/gestao-api/internal/presentation/http/dto/request"
	"github.com/sangkips/gestao-api/internal/presentation/http/middleware"
	"github.com/sangkips/gestao-api/pkg/money"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var saoPaulo = time.FixedZone("BRT", -3*60*60)

func init() {
	gin.SetMode(gin.TestMode)
}

func fixedClock() service.Clock {
	return func() time.Time { return time.Date(2025, 3, 14, 10, 30, 0, 0, saoPaulo) }
}

// body mirrors response.APIResponse for decoding
type body struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []struct {
		Field string `json:"field"`
	} `json:"errors"`
}

func asVendor(userID, vendorID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextVendorID, vendorID)
		c.Set(middleware.ContextUserRoles, []string{entity.RoleVendor})
		c.Next()
	}
}

func asAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uuid.New())
		c.Set(middleware.ContextUserRoles, []string{entity.RoleAdmin})
		c.Next()
	}
}

func serve(t *testing.T, router *gin.Engine, method, path string, payload any) (*httptest.ResponseRecorder, body) {
	t.Helper()
	var buf bytes.Buffer
	switch p := payload.(type) {
	case nil:
	case string:
		buf.WriteString(p)
	default:
		if err := json.NewEncoder(&buf).Encode(p); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var b body
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &b); err != nil {
			t.Fatalf("decode %q: %v", w.Body.String(), err)
		}
	}
	return w, b
}

func expectFieldError(t *testing.T, w *httptest.ResponseRecorder, b body, field string) {
	t.Helper()
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (%s)", w.Code, w.Body.String())
	}
	for _, e := range b.Errors {
		if e.Field == field {
			return
		}
	}
	t.Fatalf("no error for field %q in %s", field, w.Body.String())
}

func TestMoneyHandler(t *testing.T) {
	h := NewMoneyHandler()
	router := gin.New()
	router.POST("/money/format", h.Format)
	router.POST("/money/parse", h.Parse)
	router.POST("/money/mask", h.Mask)

	t.Run("format", func(t *testing.T) {
		w, b := serve(t, router, http.MethodPost, "/money/format", `{"amount": 1234.5}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var data map[string]any
		_ = json.Unmarshal(b.Data, &data)
		if data["formatted"] != "1.234,50" || data["brl"] != "R$ 1.234,50" {
			t.Fatalf("unexpected data: %v", data)
		}
	})

	t.Run("parse", func(t *testing.T) {
		w, b := serve(t, router, http.MethodPost, "/money/parse", request.MoneyTextRequest{Text: "R$ 1.500,00"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var data struct {
			Amount money.Cents `json:"amount"`
		}
		_ = json.Unmarshal(b.Data, &data)
		if data.Amount != money.FromUnits(1500, 0) {
			t.Fatalf("amount = %v", data.Amount)
		}
	})

	t.Run("parse rejects garbage", func(t *testing.T) {
		w, b := serve(t, router, http.MethodPost, "/money/parse", request.MoneyTextRequest{Text: "doze reais"})
		if w.Code != http.StatusUnprocessableEntity || b.Success {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("mask", func(t *testing.T) {
		_, b := serve(t, router, http.MethodPost, "/money/mask", request.MoneyTextRequest{Text: "123456"})
		var data map[string]string
		_ = json.Unmarshal(b.Data, &data)
		if data["masked"] != "1.234,56" {
			t.Fatalf("masked = %q", data["masked"])
		}
	})
}

func TestPeriod(t *testing.T) {
	tests := []struct {
		name     string
		in       request.PeriodRequest
		from, to *time.Time
		ok       bool
	}{
		{name: "open", ok: true},
		{
			name: "bare days cover the last day",
			in:   request.PeriodRequest{From: "2025-03-01", To: "2025-03-31"},
			from: ptr(time.Date(2025, 3, 1, 0, 0, 0, 0, saoPaulo)),
			to:   ptr(time.Date(2025, 4, 1, 0, 0, 0, 0, saoPaulo)),
			ok:   true,
		},
		{
			name: "timestamp is taken as is",
			in:   request.PeriodRequest{To: "2025-03-31T12:00:00-03:00"},
			to:   ptr(time.Date(2025, 3, 31, 12, 0, 0, 0, saoPaulo)),
			ok:   true,
		},
		{name: "bad from", in: request.PeriodRequest{From: "31/03/2025"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			from, to, ok := period(c, tt.in, saoPaulo)
			if ok != tt.ok {
				t.Fatalf("ok = %v", ok)
			}
			if !sameTime(from, tt.from) || !sameTime(to, tt.to) {
				t.Fatalf("got %v..%v, want %v..%v", from, to, tt.from, tt.to)
			}
		})
	}
}

func ptr(t time.Time) *time.Time { return &t }

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func TestSaleHandler_Preview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	products := mocks.NewMockProductRepository(ctrl)
	svc := service.NewSaleService(nil, nil, nil, products, nil, nil, zap.NewNop(), fixedClock())
	h := NewSaleHandler(svc, saoPaulo)

	router := gin.New()
	router.POST("/sales/preview", h.Preview)

	product := &entity.Product{ID: uuid.New(), Name: "Filtro", Price: money.FromUnits(100, 0)}
	products.EXPECT().GetByID(gomock.Any(), product.ID).Return(product, nil).Times(2)

	items := []map[string]any{{"type": "product", "item_id": product.ID, "quantity": 2}}

	w, b := serve(t, router, http.MethodPost, "/sales/preview", map[string]any{"items": items, "discount": "R$ 50,00"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var ok service.Preview
	_ = json.Unmarshal(b.Data, &ok)
	if !ok.Valid || ok.Totals.Total != money.FromUnits(150, 0) {
		t.Fatalf("unexpected preview: %+v", ok)
	}

	// a discount above the subtotal is reported, not failed
	w, b = serve(t, router, http.MethodPost, "/sales/preview", map[string]any{"items": items, "discount": 300})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var rejected service.Preview
	_ = json.Unmarshal(b.Data, &rejected)
	if rejected.Valid || len(rejected.Errors) != 1 || rejected.Errors[0].Field != "discount" {
		t.Fatalf("unexpected preview: %+v", rejected)
	}
}

func TestSaleHandler_BadAmount(t *testing.T) {
	h := NewSaleHandler(service.NewSaleService(nil, nil, nil, nil, nil, nil, zap.NewNop(), fixedClock()), saoPaulo)
	router := gin.New()
	router.POST("/sales/preview", h.Preview)

	w, b := serve(t, router, http.MethodPost, "/sales/preview", `{"items":[],"discount":"abc"}`)
	expectFieldError(t, w, b, "amount")
}

func TestClientHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	clients := mocks.NewMockClientRepository(ctrl)
	h := NewClientHandler(service.NewClientService(clients, fixedClock()), saoPaulo)

	userID, vendorID := uuid.New(), uuid.New()
	own := &entity.Client{ID: uuid.New(), Name: "Padaria Sol", VendorID: &vendorID}
	other := uuid.New()
	foreign := &entity.Client{ID: uuid.New(), Name: "Mercado Lua", VendorID: &other}
	clients.EXPECT().GetByID(gomock.Any(), own.ID).Return(own, nil)
	clients.EXPECT().GetByID(gomock.Any(), foreign.ID).Return(foreign, nil)

	router := gin.New()
	router.GET("/clients/:id", asVendor(userID, vendorID), h.Get)
	router.GET("/anonymous/:id", h.Get)

	if w, _ := serve(t, router, http.MethodGet, "/clients/"+own.ID.String(), nil); w.Code != http.StatusOK {
		t.Fatalf("own client: %d", w.Code)
	}
	if w, _ := serve(t, router, http.MethodGet, "/clients/"+foreign.ID.String(), nil); w.Code != http.StatusNotFound {
		t.Fatalf("another vendor's client: %d", w.Code)
	}
	if w, _ := serve(t, router, http.MethodGet, "/clients/not-a-uuid", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("bad id: %d", w.Code)
	}
	if w, _ := serve(t, router, http.MethodGet, "/anonymous/"+own.ID.String(), nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: %d", w.Code)
	}
}

func TestVisitHandler_UpdateStatus(t *testing.T) {
	userID, vendorID := uuid.New(), uuid.New()

	newRouter := func(visits repository.VisitRepository) *gin.Engine {
		h := NewVisitHandler(service.NewVisitService(visits, nil, fixedClock()), saoPaulo)
		router := gin.New()
		router.PATCH("/visits/:id/status", asVendor(userID, vendorID), h.UpdateStatus)
		return router
	}

	t.Run("unknown status", func(t *testing.T) {
		w, b := serve(t, newRouter(nil), http.MethodPatch, "/visits/"+uuid.NewString()+"/status", `{"status":"done"}`)
		expectFieldError(t, w, b, "visit_status")
	})

	t.Run("thinking needs a follow-up date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		visits := mocks.NewMockVisitRepository(ctrl)
		visit := &entity.Visit{ID: uuid.New(), VendorID: vendorID, Status: enum.VisitStatusScheduled}
		visits.EXPECT().GetByID(gomock.Any(), visit.ID).Return(visit, nil)

		w, b := serve(t, newRouter(visits), http.MethodPatch, "/visits/"+visit.ID.String()+"/status",
			map[string]any{"status": enum.VisitStatusThinking})
		expectFieldError(t, w, b, "follow_up_date")
	})

	t.Run("follow-up day is midnight in the business zone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		visits := mocks.NewMockVisitRepository(ctrl)
		visit := &entity.Visit{ID: uuid.New(), VendorID: vendorID, Status: enum.VisitStatusScheduled}
		visits.EXPECT().GetByID(gomock.Any(), visit.ID).Return(visit, nil)
		visits.EXPECT().Update(gomock.Any(), visit).Return(nil)

		w, _ := serve(t, newRouter(visits), http.MethodPatch, "/visits/"+visit.ID.String()+"/status",
			map[string]any{"status": enum.VisitStatusThinking, "follow_up_date": "2025-03-21"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}
		if want := time.Date(2025, 3, 21, 0, 0, 0, 0, saoPaulo); !visit.FollowUpDate.Equal(want) {
			t.Fatalf("follow-up = %v", visit.FollowUpDate)
		}
	})
}

func TestFinancialHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockFinancialRepository(ctrl)
	h := NewFinancialHandler(service.NewFinancialService(repo, fixedClock()), saoPaulo)

	router := gin.New()
	router.Use(asAdmin())
	router.POST("/financial/transactions", h.Create)
	router.GET("/financial/summary", h.Summary)
	router.GET("/financial/categories", h.Categories)

	t.Run("summary period", func(t *testing.T) {
		period := repository.DateRange{
			From: ptr(time.Date(2025, 3, 1, 0, 0, 0, 0, saoPaulo)),
			To:   ptr(time.Date(2025, 4, 1, 0, 0, 0, 0, saoPaulo)),
		}
		matchPeriod := gomock.Cond(func(x any) bool {
			r, ok := x.(repository.DateRange)
			return ok && sameTime(r.From, period.From) && sameTime(r.To, period.To)
		})
		repo.EXPECT().SumByType(gomock.Any(), enum.TransactionTypeIncome, matchPeriod).Return(money.FromUnits(900, 0), nil)
		repo.EXPECT().SumByType(gomock.Any(), enum.TransactionTypeExpense, matchPeriod).Return(money.FromUnits(400, 0), nil)
		repo.EXPECT().CountOnDate(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		repo.EXPECT().Top(gomock.Any(), gomock.Any(), 5).Return(nil, nil).Times(2)

		w, b := serve(t, router, http.MethodGet, "/financial/summary?from=2025-03-01&to=2025-03-31", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}
		var summary entity.FinancialSummary
		_ = json.Unmarshal(b.Data, &summary)
		if summary.Balance != money.FromUnits(500, 0) {
			t.Fatalf("balance = %v", summary.Balance)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		w, b := serve(t, router, http.MethodPost, "/financial/transactions",
			`{"type":"transfer","category":"Aluguel","amount":10,"payment_method":"PIX"}`)
		expectFieldError(t, w, b, "transaction_type")
	})

	t.Run("categories", func(t *testing.T) {
		w, b := serve(t, router, http.MethodGet, "/financial/categories", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var cats map[string][]string
		_ = json.Unmarshal(b.Data, &cats)
		if len(cats[string(enum.TransactionTypeIncome)]) == 0 || len(cats[string(enum.TransactionTypeExpense)]) == 0 {
			t.Fatalf("unexpected categories: %v", cats)
		}
	})
}

func TestVendorHandler_MyTier_WithoutVendor(t *testing.T) {
	h := NewVendorHandler(service.NewVendorService(nil, nil, zap.NewNop(), fixedClock()))
	router := gin.New()
	router.GET("/vendors/me/tier", asAdmin(), h.MyTier)

	if w, _ := serve(t, router, http.MethodGet, "/vendors/me/tier", nil); w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}
