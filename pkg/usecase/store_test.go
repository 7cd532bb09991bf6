package usecase_test

import (
	"sync"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/chatdesk/pkg/domain/model"
	"github.com/secmon-lab/chatdesk/pkg/usecase"
)

func TestStore_InitialState(t *testing.T) {
	s := usecase.NewStore()
	state := s.State()

	gt.B(t, state.Loading).True()
	gt.Array(t, state.Logs).Length(0)
	gt.Value(t, state.Stats).Nil()
	gt.Value(t, state.Filters.Page).Equal(1)
	gt.B(t, state.ShowFilters).False()
}

func TestStore_SettleOnlyLatest(t *testing.T) {
	s := usecase.NewStore()

	first, _ := s.BeginFetch()
	second, _ := s.BeginFetch()
	gt.Value(t, second).Equal(first + 1)

	stale := s.Dispatch(usecase.FetchSettled{
		Seq:  first,
		Logs: []model.ChatLog{{ID: 1}},
	})
	gt.B(t, stale).False()
	gt.B(t, s.State().Loading).True()
	gt.Array(t, s.State().Logs).Length(0)

	applied := s.Dispatch(usecase.FetchSettled{
		Seq:   second,
		Logs:  []model.ChatLog{{ID: 2}},
		Stats: &model.LogStats{TotalLogs: 1},
	})
	gt.B(t, applied).True()

	state := s.State()
	gt.B(t, state.Loading).False()
	gt.Array(t, state.Logs).Length(1).Required()
	gt.Value(t, state.Logs[0].ID).Equal(int64(2))
	gt.Value(t, state.Stats.TotalLogs).Equal(int64(1))
}

func TestStore_FailedSettleKeepsData(t *testing.T) {
	s := usecase.NewStore()

	seq, _ := s.BeginFetch()
	s.Dispatch(usecase.FetchSettled{Seq: seq, Logs: []model.ChatLog{{ID: 1}}, Stats: &model.LogStats{TotalLogs: 5}})

	seq, _ = s.BeginFetch()
	gt.B(t, s.Dispatch(usecase.FetchSettled{Seq: seq, Err: goerr.New("boom")})).True()

	state := s.State()
	gt.B(t, state.Loading).False()
	gt.Array(t, state.Logs).Length(1)
	gt.Value(t, state.Stats.TotalLogs).Equal(int64(5))
}

func TestStore_FiltersPatched(t *testing.T) {
	s := usecase.NewStore()
	s.Dispatch(usecase.FiltersPatched{Patch: model.FilterPatch{Page: model.Ptr(4)}})
	gt.Value(t, s.State().Filters.Page).Equal(4)

	s.Dispatch(usecase.FiltersPatched{Patch: model.FilterPatch{Intent: model.Ptr("sales")}})
	gt.Value(t, s.State().Filters.Intent).Equal("sales")
	gt.Value(t, s.State().Filters.Page).Equal(1)

	gt.B(t, s.Dispatch(usecase.FiltersPatched{})).False()
}

func TestStore_PatchFilters(t *testing.T) {
	t.Run("validates against current filters", func(t *testing.T) {
		s := usecase.NewStore()

		filters, err := s.PatchFilters(model.FilterPatch{FromDate: model.Ptr("2025-03-10")})
		gt.NoError(t, err).Required()
		gt.Value(t, filters.FromDate).Equal("2025-03-10")

		_, err = s.PatchFilters(model.FilterPatch{ToDate: model.Ptr("2025-03-01")})
		gt.Error(t, err).Is(model.ErrInvalidDateRange)
		gt.Value(t, s.State().Filters.ToDate).Equal("")
		gt.Value(t, s.State().Filters.FromDate).Equal("2025-03-10")
	})

	t.Run("concurrent patches never combine into an invalid range", func(t *testing.T) {
		for range 100 {
			s := usecase.NewStore()
			patches := []model.FilterPatch{
				{FromDate: model.Ptr("2025-03-10")},
				{ToDate: model.Ptr("2025-03-01")},
			}

			var (
				wg     sync.WaitGroup
				mu     sync.Mutex
				failed int
			)
			for _, p := range patches {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if _, err := s.PatchFilters(p); err != nil {
						mu.Lock()
						failed++
						mu.Unlock()
					}
				}()
			}
			wg.Wait()

			gt.Value(t, failed).Equal(1)
			gt.NoError(t, s.State().Filters.Validate())
		}
	})

	t.Run("empty patch changes nothing", func(t *testing.T) {
		s := usecase.NewStore()
		var calls int
		s.Subscribe(func(model.ViewState) { calls++ })

		filters, err := s.PatchFilters(model.FilterPatch{})
		gt.NoError(t, err).Required()
		gt.Value(t, filters).Equal(model.DefaultLogFilters())
		gt.Value(t, calls).Equal(0)
	})
}

func TestStore_StateIsSnapshot(t *testing.T) {
	s := usecase.NewStore()
	seq, _ := s.BeginFetch()
	s.Dispatch(usecase.FetchSettled{Seq: seq, Logs: []model.ChatLog{{ID: 1, UserText: "a"}}})

	state := s.State()
	state.Logs[0].UserText = "changed"
	gt.Value(t, s.State().Logs[0].UserText).Equal("a")
}

func TestStore_Subscribe(t *testing.T) {
	s := usecase.NewStore()

	var seen []bool
	unsubscribe := s.Subscribe(func(v model.ViewState) {
		seen = append(seen, v.ShowFilters)
	})

	s.Dispatch(usecase.FiltersToggled{})
	s.Dispatch(usecase.FiltersToggled{})
	s.Dispatch(usecase.FiltersPatched{})
	unsubscribe()
	s.Dispatch(usecase.FiltersToggled{})

	gt.Value(t, seen).Equal([]bool{true, false})
}
