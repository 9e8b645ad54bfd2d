package web

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/input-output-hk/gauntlet/src/application/service"
	"github.com/input-output-hk/gauntlet/src/config"
	"github.com/input-output-hk/gauntlet/src/domain"
	"github.com/input-output-hk/gauntlet/src/domain/repository"
)

var ErrQueueFull = errors.New("Too many runs are waiting, try again later")

type Web struct {
	Config config.WebConfig

	Logger        zerolog.Logger
	Workflow      domain.Workflow
	MatrixService service.MatrixService
	RunService    service.RunService
	Broadcaster   *service.Broadcaster
	Gatherer      prometheus.Gatherer

	// Queue receives runs that were started and wait for execution.
	// Events are refused while it is full.
	Queue chan<- *domain.Run
}

func (self *Web) Start(ctx context.Context) error {
	self.Logger.Info().Str("listen", self.Config.Listen).Msg("Starting")

	server := &http.Server{Addr: self.Config.Listen, Handler: self.Router()}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			self.Logger.Err(err).Msgf("Failed to start web server on %s", self.Config.Listen)
		}
	}()

	<-ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		self.Logger.Err(err).Msg("Failed to stop web server")
	}

	return nil
}

func (self *Web) Router() *mux.Router {
	muxRouter := mux.NewRouter().StrictSlash(true).UseEncodedPath()
	muxRouter.NotFoundHandler = http.NotFoundHandler()

	// sorted alphabetically, please keep it this way
	muxRouter.HandleFunc("/api/event", self.ApiEventPost).Methods(http.MethodPost)
	muxRouter.HandleFunc("/api/run/{id}/watch", self.ApiRunIdWatchGet).Methods(http.MethodGet)
	muxRouter.HandleFunc("/api/run/{id}", self.ApiRunIdGet).Methods(http.MethodGet)
	muxRouter.HandleFunc("/api/run", self.ApiRunGet).Methods(http.MethodGet)

	gatherer := self.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	muxRouter.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return muxRouter
}

type apiEventResponse struct {
	Triggered bool       `json:"triggered"`
	Run       *uuid.UUID `json:"run,omitempty"`
	Jobs      []string   `json:"jobs,omitempty"`
}

func (self *Web) ApiEventPost(w http.ResponseWriter, req *http.Request) {
	if !self.authorized(req) {
		self.Error(w, HandlerError{errors.New("Invalid or missing token"), http.StatusUnauthorized})
		return
	}

	event := domain.Event{}
	if err := json.NewDecoder(req.Body).Decode(&event); err != nil {
		self.ClientError(w, errors.WithMessage(err, "Could not decode event"))
		return
	}

	run := self.MatrixService.Plan(self.Workflow, event)
	if run == nil {
		self.json(w, apiEventResponse{}, http.StatusOK)
		return
	}

	if cap(self.Queue) > 0 && len(self.Queue) == cap(self.Queue) {
		self.Unavailable(w, ErrQueueFull)
		return
	}

	if err := self.MatrixService.Start(run); err != nil {
		self.ServerError(w, err)
		return
	}

	select {
	case self.Queue <- run:
	default:
		// The run is already recorded but will never execute.
		if err := self.MatrixService.Abort(run, ErrQueueFull); err != nil {
			self.Logger.Err(err).Stringer("run-id", run.ID).Msg("Could not abort Run")
		}
		self.Unavailable(w, ErrQueueFull)
		return
	}

	response := apiEventResponse{Triggered: true, Run: &run.ID}
	for _, job := range run.Jobs {
		response.Jobs = append(response.Jobs, job.Entry.String())
	}
	self.json(w, response, http.StatusAccepted)
}

func (self *Web) authorized(req *http.Request) bool {
	if self.Config.Token == "" {
		return true
	}
	token, ok := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
	return ok && subtle.ConstantTimeCompare([]byte(token), []byte(self.Config.Token)) == 1
}

func getPage(req *http.Request) (*repository.Page, error) {
	offset, limit := 0, 0

	if offsetStr := req.FormValue("offset"); offsetStr != "" {
		var err error
		if offset, err = strconv.Atoi(offsetStr); err != nil {
			return nil, errors.WithMessage(err, "offset parameter is invalid, should be positive integer")
		}
	}

	if limitStr := req.FormValue("limit"); limitStr != "" {
		var err error
		if limit, err = strconv.Atoi(limitStr); err != nil {
			return nil, errors.WithMessage(err, "limit parameter is invalid, should be positive integer")
		}
	}

	return repository.NewPage(offset, limit), nil
}

type apiRunResponse struct {
	Page *repository.Page `json:"page"`
	Prev *int             `json:"prev,omitempty"`
	Next *int             `json:"next,omitempty"`
	Runs []*domain.Run    `json:"runs"`
}

func (self *Web) ApiRunGet(w http.ResponseWriter, req *http.Request) {
	if page, err := getPage(req); err != nil {
		self.ClientError(w, err)
		return
	} else if runs, err := self.RunService.GetAll(page); err != nil {
		self.ServerError(w, errors.WithMessage(err, "failed to fetch Runs"))
		return
	} else {
		if runs == nil {
			runs = []*domain.Run{}
		}
		self.json(w, apiRunResponse{
			Page: page,
			Prev: page.PrevOffset(),
			Next: page.NextOffset(),
			Runs: runs,
		}, http.StatusOK)
	}
}

// Returns (_, false) if an error occurred.
// The error is already sent to the client.
func (self *Web) getRun(w http.ResponseWriter, req *http.Request) (*domain.Run, bool) {
	if id, err := uuid.Parse(mux.Vars(req)["id"]); err != nil {
		self.ClientError(w, err)
		return nil, false
	} else if run, err := self.RunService.GetById(id); err != nil {
		self.ServerError(w, err)
		return run, false
	} else {
		return run, true
	}
}

func (self *Web) ApiRunIdGet(w http.ResponseWriter, req *http.Request) {
	switch run, ok := self.getRun(w, req); {
	case !ok:
	case run == nil:
		self.NotFound(w, nil)
	default:
		self.json(w, run, http.StatusOK)
	}
}

var websocketUpgrader = websocket.Upgrader{}

// ApiRunIdWatchGet streams job updates of a run over a websocket
// until the run finishes or the client goes away.
func (self *Web) ApiRunIdWatchGet(w http.ResponseWriter, req *http.Request) {
	id, err := uuid.Parse(mux.Vars(req)["id"])
	if err != nil {
		self.ClientError(w, err)
		return
	}

	// Subscribe first so that no update between the lookup and the upgrade is lost.
	updates, unsubscribe := self.Broadcaster.Subscribe(id)

	run, err := self.RunService.GetById(id)
	switch {
	case err != nil:
		unsubscribe()
		self.ServerError(w, err)
		return
	case run == nil:
		unsubscribe()
		self.NotFound(w, nil)
		return
	}

	conn, err := websocketUpgrader.Upgrade(w, req, nil)
	if err != nil {
		unsubscribe()
		self.Logger.Debug().Err(err).Msg("Could not upgrade to websocket")
		return
	}

	go func() {
		defer unsubscribe()
		defer func() {
			if err := conn.Close(); err != nil {
				self.Logger.Err(err).Msg("While closing websocket")
			}
		}()

		if err := conn.WriteJSON(run); err != nil {
			self.Logger.Err(err).Msg("While writing run to websocket")
			return
		}
		if run.Status != domain.RunStatusRunning {
			return
		}

		// Stop streaming when the client disconnects.
		gone := make(chan struct{})
		go func() {
			defer close(gone)
			for {
				if _, _, err := conn.NextReader(); err != nil {
					return
				}
			}
		}()

		interval := self.Config.WatchInterval
		if interval <= 0 {
			interval = 30 * time.Second
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-gone:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(interval)); err != nil {
					return
				}
			case update, ok := <-updates:
				if !ok {
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseNormalClosure, "run finished"),
						time.Now().Add(time.Second))
					return
				}
				if err := conn.WriteJSON(update); err != nil {
					self.Logger.Err(err).Msg("While writing message to websocket")
					return
				}
			}
		}
	}()
}

type HandlerError struct {
	error
	StatusCode int
}

func (self HandlerError) HasError() bool {
	return self.error != nil
}

func (self *Web) ServerError(w http.ResponseWriter, err error) {
	self.Error(w, HandlerError{err, http.StatusInternalServerError})
}

func (self *Web) ClientError(w http.ResponseWriter, err error) {
	self.Error(w, HandlerError{err, http.StatusBadRequest})
}

func (self *Web) Unavailable(w http.ResponseWriter, err error) {
	w.Header().Set("Retry-After", "30")
	self.Error(w, HandlerError{err, http.StatusServiceUnavailable})
}

func (self *Web) NotFound(w http.ResponseWriter, err error) {
	self.Error(w, HandlerError{err, http.StatusNotFound})
}

func (self *Web) Error(w http.ResponseWriter, err error) {
	status := 500

	if handlerErr, ok := err.(HandlerError); ok {
		status = handlerErr.StatusCode
		if !handlerErr.HasError() {
			err = nil
		}
	}

	var e *zerolog.Event
	if status >= 500 {
		e = self.Logger.Error()
	} else {
		e = self.Logger.Debug()
	}
	e.Err(err).Int("status", status).Msg("Handler error")

	var msg string
	if err != nil {
		msg = err.Error()
	}

	http.Error(w, msg, status)
}

func (self *Web) json(w http.ResponseWriter, obj any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(obj); err != nil {
		self.Logger.Err(err).Msg("While encoding response")
	}
}
