package stream

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/motiontx/api"
	"github.com/matt-g-everett/motiontx/motion"
)

// A Sample is one applied property value within a frame.
type Sample struct {
	Target   string      `json:"target"`
	Property string      `json:"property"`
	Value    interface{} `json:"value"`
}

// A Frame carries every value the engine applied during one tick.
type Frame struct {
	RuntimeMs int64    `json:"runtimeMs"`
	Samples   []Sample `json:"samples"`
}

// Streamer drives the engine from a ticker and streams the computed
// values over MQTT to whatever renders them.
type Streamer struct {
	config   Config
	client   mqtt.Client
	ctrl     *motion.Controller
	roots    map[string]motion.Handle
	order    []string
	samples  []Sample
	commands chan ControlMessage
	start    time.Time
}

// NewStreamer creates an instance of a Streamer object.
func NewStreamer(config Config, client mqtt.Client, ctrl *motion.Controller) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.ctrl = ctrl
	s.roots = make(map[string]motion.Handle)
	s.commands = make(chan ControlMessage, 16)

	ctrl.OnApply(s.collect)
	ctrl.OnError(func(target interface{}, err error) {
		log.Printf("apply failed for %v: %v", target, err)
	})

	return s
}

// Register makes a root addressable by name for remote control and state
// reporting.
func (s *Streamer) Register(name string, h motion.Handle) {
	if _, ok := s.roots[name]; !ok {
		s.order = append(s.order, name)
	}
	s.roots[name] = h
}

// States reports the resume record for every registered root.
func (s *Streamer) States() []api.RootState {
	states := make([]api.RootState, 0, len(s.order))
	for _, name := range s.order {
		h := s.roots[name]
		state, err := s.ctrl.State(h)
		if err != nil {
			continue
		}
		current, _ := s.ctrl.CurrentTime(h)
		rate, _ := s.ctrl.Rate(h)
		states = append(states, api.RootState{
			Name:        name,
			CurrentTime: current,
			Rate:        rate,
			State:       state.String(),
		})
	}
	return states
}

func (s *Streamer) collect(target interface{}, property string, value motion.Value) {
	s.samples = append(s.samples, Sample{
		Target:   fmt.Sprint(target),
		Property: property,
		Value:    value,
	})
}

// SendFrame advances the engine by one delta and publishes the resulting
// values as a JSON frame.
func (s *Streamer) SendFrame(delta float64) {
	s.samples = s.samples[:0]
	s.ctrl.Tick(delta)
	if len(s.samples) == 0 {
		return
	}

	f := Frame{
		RuntimeMs: time.Since(s.start).Milliseconds(),
		Samples:   s.samples,
	}
	b, _ := json.Marshal(f)
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 0, false, b)
	token.Wait()
}

// Run causes the Streamer to tick the engine and send Frames continuously,
// handling control commands in between frames.
func (s *Streamer) Run() {
	rate := s.config.Clock.FrameRate
	if rate <= 0 {
		rate = 30
	}

	s.start = time.Now()
	last := s.start
	publishTimer := time.NewTicker(time.Duration(float64(time.Second) / rate))
	for {
		select {
		case now := <-publishTimer.C:
			s.SendFrame(now.Sub(last).Seconds())
			last = now
		case m := <-s.commands:
			s.dispatch(m)
		}
	}
}
