package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// RootState is the minimal record needed to resume playback of a root.
type RootState struct {
	Name        string  `json:"name"`
	CurrentTime float64 `json:"currentTime"`
	Rate        float64 `json:"rate"`
	State       string  `json:"state"`
}

// A StateSource reports the playback state of every registered root.
type StateSource interface {
	States() []RootState
}

type Api struct {
	source StateSource
}

func NewApi(source StateSource) *Api {
	a := new(Api)
	a.source = source
	return a
}

func (a *Api) handleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a.source.States())
}

func (a *Api) Serve() {
	http.HandleFunc("/state", a.handleState)

	log.Println("Listening...")
	http.ListenAndServe(":3000", nil)
}
