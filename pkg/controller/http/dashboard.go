package http

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chatdesk/pkg/domain/interfaces"
	"github.com/secmon-lab/chatdesk/pkg/domain/model"
	"github.com/secmon-lab/chatdesk/pkg/domain/types"
	"github.com/secmon-lab/chatdesk/pkg/service/chatbot"
	"github.com/secmon-lab/chatdesk/pkg/service/export"
	"github.com/secmon-lab/chatdesk/pkg/usecase"
	"github.com/secmon-lab/chatdesk/pkg/utils/errutil"
	"github.com/secmon-lab/chatdesk/pkg/utils/safe"
)

var (
	ErrInvalidFilterValue = errors.New("invalid filter value")
	ErrInvalidLogID       = errors.New("invalid log id")
)

type confirmCtxKey struct{}

// RequestConfirmer confirms deletions with the "confirm" query parameter
// of the request being served.
func RequestConfirmer() interfaces.Confirmer {
	return interfaces.ConfirmFunc(func(ctx context.Context, prompt string) (bool, error) {
		confirmed, _ := ctx.Value(confirmCtxKey{}).(bool)
		return confirmed, nil
	})
}

type viewResponse struct {
	Filters     model.LogFilters   `json:"filters"`
	Stats       *usecase.StatsView `json:"stats"`
	Rows        []usecase.LogRow   `json:"rows"`
	Loading     bool               `json:"loading"`
	ShowFilters bool               `json:"show_filters"`
}

func (s *Server) view() viewResponse {
	state := s.dashboard.State()
	return viewResponse{
		Filters:     state.Filters,
		Stats:       usecase.PresentStats(state.Stats),
		Rows:        usecase.PresentRows(state.Logs, s.loc),
		Loading:     state.Loading,
		ShowFilters: state.ShowFilters,
	}
}

func (s *Server) viewHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, s.view())
}

// filterRequest mirrors the dashboard's filter controls: select values
// are strings and an empty string selects "all".
type filterRequest struct {
	Success        *string `json:"success"`
	Intent         *string `json:"intent"`
	UnansweredOnly *string `json:"unanswered_only"`
	FromDate       *string `json:"from_date"`
	ToDate         *string `json:"to_date"`
	PageSize       *string `json:"page_size"`
	Page           *int    `json:"page"`
}

func parseTriState(name string, v *string) (*bool, bool, error) {
	if v == nil {
		return nil, false, nil
	}
	if *v == "" {
		return nil, true, nil
	}
	b, err := strconv.ParseBool(*v)
	if err != nil {
		return nil, false, goerr.Wrap(ErrInvalidFilterValue, "failed to parse filter",
			goerr.V("field", name), goerr.V("value", *v))
	}
	return &b, false, nil
}

func (req filterRequest) toPatch() (model.FilterPatch, error) {
	var patch model.FilterPatch
	var err error

	if patch.Success, patch.ClearSuccess, err = parseTriState("success", req.Success); err != nil {
		return model.FilterPatch{}, err
	}
	if patch.UnansweredOnly, patch.ClearUnansweredOnly, err = parseTriState("unanswered_only", req.UnansweredOnly); err != nil {
		return model.FilterPatch{}, err
	}

	patch.Intent = req.Intent
	patch.FromDate = req.FromDate
	patch.ToDate = req.ToDate
	patch.Page = req.Page

	if req.PageSize != nil {
		n, err := strconv.Atoi(*req.PageSize)
		if err != nil {
			return model.FilterPatch{}, goerr.Wrap(ErrInvalidFilterValue, "failed to parse filter",
				goerr.V("field", "page_size"), goerr.V("value", *req.PageSize))
		}
		size := types.PageSize(n)
		patch.PageSize = &size
	}

	return patch, nil
}

func (s *Server) filtersHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req filterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode filter request"), http.StatusBadRequest)
		return
	}

	patch, err := req.toPatch()
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	if err := s.dashboard.SetFilter(ctx, patch); err != nil {
		errutil.HandleHTTP(ctx, w, err, statusOf(err))
		return
	}

	writeJSON(ctx, w, http.StatusOK, s.view())
}

func (s *Server) toggleHandler(w http.ResponseWriter, r *http.Request) {
	s.dashboard.ToggleFilters()
	writeJSON(r.Context(), w, http.StatusOK, s.view())
}

func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := s.dashboard.Refresh(ctx); err != nil {
		errutil.HandleHTTP(ctx, w, err, statusOf(err))
		return
	}
	writeJSON(ctx, w, http.StatusOK, s.view())
}

func (s *Server) deleteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(ErrInvalidLogID, "failed to parse log id", goerr.V("id", idParam)), http.StatusBadRequest)
		return
	}

	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	ctx = context.WithValue(ctx, confirmCtxKey{}, confirmed)

	deleted, err := s.dashboard.DeleteRow(ctx, id)
	if err != nil && !deleted {
		errutil.HandleHTTP(ctx, w, err, statusOf(err))
		return
	}

	// The row is gone even when the follow-up refresh failed; the view is stale then
	var refreshErr string
	if err != nil {
		refreshErr = err.Error()
	}

	writeJSON(ctx, w, http.StatusOK, struct {
		Deleted      bool         `json:"deleted"`
		RefreshError string       `json:"refresh_error,omitempty"`
		View         viewResponse `json:"view"`
	}{
		Deleted:      deleted,
		RefreshError: refreshErr,
		View:         s.view(),
	})
}

func (s *Server) exportHandler(w http.ResponseWriter, r *http.Request) {
	name, data := s.dashboard.EncodeExport()

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
	w.WriteHeader(http.StatusOK)
	safe.Write(r.Context(), w, data)
}

// statusOf maps dashboard errors to the status returned to the browser
func statusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidPage),
		errors.Is(err, model.ErrInvalidPageSize),
		errors.Is(err, model.ErrInvalidDate),
		errors.Is(err, model.ErrInvalidDateRange):
		return http.StatusBadRequest
	case chatbot.IsNotFound(err):
		return http.StatusNotFound
	case chatbot.StatusCodeOf(err) != 0:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}
