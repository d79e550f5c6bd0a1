package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func widgetID(w widget) string { return w.ID }

func newWidgetCollection(srvURL string, base Filters) *Collection[widget] {
	svc := NewService[widget](New(Config{BaseURL: srvURL}), "/widgets")
	return NewCollection(svc, base, widgetID)
}

func TestCollectionLoad(t *testing.T) {
	t.Run("missing company id short-circuits", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatalf("no request expected")
		}))
		defer srv.Close()

		col := newWidgetCollection(srv.URL, Filters{})
		if err := col.Load(context.Background(), Filters{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(col.Data()) != 0 || col.Err() != nil {
			t.Fatalf("expected empty collection")
		}
	})

	t.Run("replaces data wholesale", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"data":{"data":[{"id":"w-1"}],"total":1,"totalPages":1}}`))
		}))
		defer srv.Close()

		col := newWidgetCollection(srv.URL, Filters{CompanyID: "co-1"})
		if err := col.Load(context.Background(), Filters{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if data := col.Data(); len(data) != 1 || data[0].ID != "w-1" {
			t.Fatalf("unexpected data: %+v", data)
		}
		if col.Meta().Total != 1 {
			t.Fatalf("unexpected meta: %+v", col.Meta())
		}
	})

	t.Run("failure resets data and records the error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success":false,"code":"INTERNAL_ERROR","message":"boom"}`))
		}))
		defer srv.Close()

		col := newWidgetCollection(srv.URL, Filters{CompanyID: "co-1"})
		col.data = []widget{{ID: "stale"}}

		if err := col.Load(context.Background(), Filters{}); err == nil {
			t.Fatalf("expected error")
		}
		if len(col.Data()) != 0 {
			t.Fatalf("data should be reset on failure")
		}
		if col.Err() == nil {
			t.Fatalf("error state should be set")
		}
	})
}

func TestCollectionLatestFiltersWin(t *testing.T) {
	release := make(chan struct{})
	firstArrived := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("search") {
		case "old":
			close(firstArrived)
			<-release
			w.Write([]byte(`{"success":true,"data":{"data":[{"id":"old"}],"total":1,"totalPages":1}}`))
		default:
			w.Write([]byte(`{"success":true,"data":{"data":[{"id":"new"}],"total":1,"totalPages":1}}`))
		}
	}))
	defer srv.Close()

	col := newWidgetCollection(srv.URL, Filters{CompanyID: "co-1"})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = col.Load(context.Background(), Filters{Search: "old"})
	}()
	<-firstArrived

	if err := col.Load(context.Background(), Filters{Search: "new"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	close(release)
	<-done

	// The stale completion must not overwrite the newer result.
	if data := col.Data(); len(data) != 1 || data[0].ID != "new" {
		t.Fatalf("stale load overwrote newer data: %+v", data)
	}
}

func TestCollectionCreateAppendsTail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"id":"w-9","name":"nuevo"}}`))
	}))
	defer srv.Close()

	col := newWidgetCollection(srv.URL, Filters{CompanyID: "co-1"})
	col.data = []widget{{ID: "w-1"}, {ID: "w-2"}}

	created, err := col.Create(context.Background(), map[string]string{"name": "nuevo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data := col.Data()
	if len(data) != 3 || data[2].ID != created.ID {
		t.Fatalf("expected tail append, got %+v", data)
	}
}

func TestCollectionUpdateReplacesByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"id":"w-2","name":"renombrado"}}`))
	}))
	defer srv.Close()

	col := newWidgetCollection(srv.URL, Filters{CompanyID: "co-1"})
	col.data = []widget{{ID: "w-1", Name: "uno"}, {ID: "w-2", Name: "dos"}}

	if _, err := col.Update(context.Background(), "w-2", map[string]string{"name": "renombrado"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data := col.Data()
	if data[1].Name != "renombrado" || data[0].Name != "uno" {
		t.Fatalf("unexpected data: %+v", data)
	}
}

func TestCollectionDeleteIdempotent(t *testing.T) {
	deleted := map[string]bool{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/widgets/"):]
		if deleted[id] {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"code":"NOT_FOUND","message":"Resource not found"}`))
			return
		}
		deleted[id] = true
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	col := newWidgetCollection(srv.URL, Filters{CompanyID: "co-1"})
	col.data = []widget{{ID: "w-1"}, {ID: "w-2"}}

	ok, err := col.Delete(context.Background(), "w-1")
	if err != nil || !ok {
		t.Fatalf("first delete: ok=%v err=%v", ok, err)
	}
	if len(col.Data()) != 1 {
		t.Fatalf("expected one remaining widget, got %+v", col.Data())
	}

	// Second delete of the same id: no error, data untouched.
	ok, err = col.Delete(context.Background(), "w-1")
	if err != nil {
		t.Fatalf("second delete should not error: %v", err)
	}
	if ok {
		t.Fatalf("second delete should report false")
	}
	if data := col.Data(); len(data) != 1 || data[0].ID != "w-2" {
		t.Fatalf("data changed on second delete: %+v", data)
	}
}
