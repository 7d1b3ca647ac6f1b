// Package panel is the agent's own HTTP surface: the dashboards talk to
// it instead of the ERP API, so panels keep answering from captured data
// and order submissions keep being accepted while the API is away.
package panel

//go:generate mockgen -source=internal/panel/server.go -destination=internal/panel/server_mock_test.go -package=panel

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Kavesh2000/ERP/internal/appstate"
	"github.com/Kavesh2000/ERP/internal/domain"
	"github.com/Kavesh2000/ERP/internal/observability"
	"github.com/Kavesh2000/ERP/internal/reports"
	"github.com/Kavesh2000/ERP/internal/submit"
)

type Submitter interface {
	Submit(ctx context.Context, req domain.OrderRequest) (submit.Receipt, error)
}

type History interface {
	List() []domain.LocalOrder
}

type Session interface {
	Login(ctx context.Context, username, password string) (*domain.User, error)
	Whoami(ctx context.Context) (*domain.User, error)
	Logout(ctx context.Context) error
}

type Reports interface {
	SalesByDate(ctx context.Context) ([]reports.DateRow, reports.LoadStats, error)
	SalesByPayment(ctx context.Context) ([]reports.PaymentRow, reports.LoadStats, error)
	SalesByCategory(ctx context.Context) ([]reports.CategoryRow, reports.LoadStats, error)
	StockLevels(ctx context.Context) ([]reports.StockRow, reports.LoadStats, error)
	Movements(ctx context.Context) ([]domain.Movement, reports.LoadStats, error)
	SourceOverview(ctx context.Context) ([]reports.SourceRow, reports.LoadStats, error)
	PriceHistory(ctx context.Context, productID int64) ([]domain.PriceChange, reports.LoadStats, error)
	Daily(ctx context.Context) (*domain.DailySummary, reports.LoadStats, error)
	ExportWorkbook(ctx context.Context) (*excelize.File, error)
}

// Deps wires the server. Session and MetricsHandler are optional; the
// rest must be set.
type Deps struct {
	Flow           Submitter
	History        History
	Reports        Reports
	Session        Session
	State          *appstate.State
	Hub            *Hub
	Metrics        observability.Metrics
	MetricsHandler http.Handler
	StaticDir      string
	Logger         *zap.Logger
}

type Server struct {
	flow           Submitter
	history        History
	reports        Reports
	session        Session
	state          *appstate.State
	hub            *Hub
	metrics        observability.Metrics
	metricsHandler http.Handler
	staticDir      string
	logger         *zap.Logger

	router chi.Router
}

func New(d Deps) *Server {
	s := &Server{
		flow:           d.Flow,
		history:        d.History,
		reports:        d.Reports,
		session:        d.Session,
		state:          d.State,
		hub:            d.Hub,
		metrics:        d.Metrics,
		metricsHandler: d.MetricsHandler,
		staticDir:      d.StaticDir,
		logger:         d.Logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(Observe(s.logger, s.metrics))
	r.Use(middleware.Recoverer)

	r.Get("/ping", s.ping)
	r.Get("/healthz", s.healthz)
	r.Get("/ws", s.hub.ServeWS)
	if s.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", s.metricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/state", s.getState)
		api.Get("/orders/local", s.listLocalOrders)
		api.Post("/orders", s.createOrder)
		api.Post("/login", s.login)
		api.Get("/whoami", s.whoami)
		api.Post("/logout", s.logout)
		api.Get("/export/daily.xlsx", s.exportDaily)

		api.Route("/panels", func(p chi.Router) {
			p.Get("/sales-by-date", s.salesByDate)
			p.Get("/sales-by-payment", s.salesByPayment)
			p.Get("/sales-by-category", s.salesByCategory)
			p.Get("/stock", s.stockLevels)
			p.Get("/movements", s.movements)
			p.Get("/sources", s.sourceOverview)
			p.Get("/price-history", s.priceHistory)
			p.Get("/daily-summary", s.dailySummary)
		})
	})

	if s.staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.staticDir)))
	}

	s.router = r
}

func (s *Server) ping(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("pong"))
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) getState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.state.Snapshot())
}

func (s *Server) listLocalOrders(w http.ResponseWriter, _ *http.Request) {
	recs := s.history.List()
	if recs == nil {
		recs = []domain.LocalOrder{}
	}
	writeJSON(w, recs)
}

// submitResponse reports how a submission resolved, in the agent's local
// camelCase convention.
type submitResponse struct {
	TempID   string `json:"tempId,omitempty"`
	Status   string `json:"status"`
	ServerID int64  `json:"serverId,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var req domain.OrderRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		s.logger.Warn("order body not decoded", zap.Error(err))
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	rcpt, err := s.flow.Submit(r.Context(), req)
	if err != nil {
		if errors.Is(err, submit.ErrBadPayload) {
			writeJSONStatus(w, http.StatusUnprocessableEntity, submitResponse{
				Status: string(rcpt.Outcome),
				Error:  err.Error(),
			})
			return
		}
		http.Error(w, "submission failed", http.StatusInternalServerError)
		return
	}

	resp := submitResponse{
		TempID:   rcpt.TempID,
		Status:   string(rcpt.Outcome),
		ServerID: rcpt.ServerID,
		Error:    rcpt.Err,
	}
	switch rcpt.Outcome {
	case submit.OutcomeConfirmed:
		writeJSONStatus(w, http.StatusCreated, resp)
	case submit.OutcomeRejected:
		writeJSONStatus(w, http.StatusConflict, resp)
	default:
		writeJSONStatus(w, http.StatusAccepted, resp)
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if s.session == nil {
		http.Error(w, "sessions not configured", http.StatusNotImplemented)
		return
	}
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	user, err := s.session.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.logger.Warn("login failed", zap.String("username", req.Username), zap.Error(err))
		http.Error(w, "login failed", http.StatusUnauthorized)
		return
	}
	s.state.SetUser(user)
	writeJSON(w, user)
}

func (s *Server) whoami(w http.ResponseWriter, r *http.Request) {
	if s.session == nil {
		http.Error(w, "sessions not configured", http.StatusNotImplemented)
		return
	}
	user, err := s.session.Whoami(r.Context())
	if err != nil {
		http.Error(w, "not signed in", http.StatusUnauthorized)
		return
	}
	s.state.SetUser(user)
	writeJSON(w, user)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if s.session == nil {
		http.Error(w, "sessions not configured", http.StatusNotImplemented)
		return
	}
	if err := s.session.Logout(r.Context()); err != nil {
		s.logger.Warn("logout not acknowledged by server", zap.Error(err))
	}
	s.state.SetUser(nil)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) exportDaily(w http.ResponseWriter, r *http.Request) {
	f, err := s.reports.ExportWorkbook(r.Context())
	if err != nil {
		s.logger.Warn("export failed", zap.Error(err))
		http.Error(w, "export unavailable", http.StatusBadGateway)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="daily.xlsx"`)
	if err := f.Write(w); err != nil {
		s.logger.Warn("export write aborted", zap.Error(err))
	}
}

func (s *Server) salesByDate(w http.ResponseWriter, r *http.Request) {
	renderPanel(s, w, r, s.reports.SalesByDate)
}

func (s *Server) salesByPayment(w http.ResponseWriter, r *http.Request) {
	renderPanel(s, w, r, s.reports.SalesByPayment)
}

func (s *Server) salesByCategory(w http.ResponseWriter, r *http.Request) {
	renderPanel(s, w, r, s.reports.SalesByCategory)
}

func (s *Server) stockLevels(w http.ResponseWriter, r *http.Request) {
	renderPanel(s, w, r, s.reports.StockLevels)
}

func (s *Server) movements(w http.ResponseWriter, r *http.Request) {
	renderPanel(s, w, r, s.reports.Movements)
}

func (s *Server) sourceOverview(w http.ResponseWriter, r *http.Request) {
	renderPanel(s, w, r, s.reports.SourceOverview)
}

func (s *Server) priceHistory(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(r.URL.Query().Get("product_id"), 10, 64)
	if err != nil {
		http.Error(w, "product_id required", http.StatusBadRequest)
		return
	}
	renderPanel(s, w, r, func(ctx context.Context) ([]domain.PriceChange, reports.LoadStats, error) {
		return s.reports.PriceHistory(ctx, productID)
	})
}

func (s *Server) dailySummary(w http.ResponseWriter, r *http.Request) {
	renderPanel(s, w, r, s.reports.Daily)
}

// renderPanel serves one loader result with the tier timings in the
// response headers. Server-Timing entries go out before the body.
func renderPanel[T any](s *Server, w http.ResponseWriter, r *http.Request, load func(context.Context) (T, reports.LoadStats, error)) {
	rows, st, err := load(r.Context())
	if err != nil {
		http.Error(w, "panel unavailable", http.StatusBadGateway)
		return
	}

	observability.AppendServerTiming(w, "mem", st.MemMs, "")
	observability.AppendServerTiming(w, "store", st.StoreMs, "")
	observability.AppendServerTiming(w, "api", st.APIMs, "")
	observability.AppendServerTiming(w, "source", 0, string(st.Source))
	w.Header().Set("X-Source", string(st.Source))
	observability.SetIfPos(w, "X-Mem-Time", st.MemMs)
	observability.SetIfPos(w, "X-Store-Time", st.StoreMs)
	observability.SetIfPos(w, "X-API-Time", st.APIMs)

	writeJSON(w, rows)
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	s.logger.Info("panel listening", zap.String("addr", addr))
	return srv.ListenAndServe()
}
