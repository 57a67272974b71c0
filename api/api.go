// Package api serves program analysis over HTTP.
package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	sse "github.com/alexandrevicenzi/go-sse"
	"github.com/gorilla/mux"
	"github.com/mastercactapus/lasertime/report"
	"github.com/mastercactapus/lasertime/vm"
)

// MaxProgramSize limits the request body of an analysis.
const MaxProgramSize = 64 << 20

// AnalysisChannel is the SSE channel every successful analysis is sent on.
const AnalysisChannel = "/events/analysis"

type API struct {
	http.Handler
	sse  *sse.Server
	opts []vm.Option
}

func New(opts ...vm.Option) *API {
	r := mux.NewRouter()

	a := &API{
		Handler: r,
		opts:    opts,
		sse: sse.NewServer(&sse.Options{
			Logger: log.New(io.Discard, "", 0),
		}),
	}

	r.HandleFunc("/api/analyze", a.analyze).Methods("POST")
	r.PathPrefix("/events/").Handler(a.sse)

	return a
}

// Close disconnects all event listeners.
func (a *API) Close() { a.sse.Shutdown() }

func (a *API) analyze(w http.ResponseWriter, req *http.Request) {
	body := http.MaxBytesReader(w, req.Body, MaxProgramSize)
	defer body.Close()

	t, err := vm.Analyze(body, a.opts...)
	if err != nil {
		log.Printf("ERROR: analyze: %+v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := json.Marshal(report.NewSummary(t))
	if err != nil {
		log.Printf("ERROR: marshal json: %+v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(append(data, '\n'))

	a.sse.SendMessage(AnalysisChannel, sse.SimpleMessage(string(data)))
}
