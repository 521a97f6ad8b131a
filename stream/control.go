package stream

import (
	"encoding/json"
	"log"
	"os"

	"github.com/eclipse/paho.mqtt.golang"
)

// ControlMessage is a playback command for a named root.
type ControlMessage struct {
	Name  string  `json:"name"`
	Op    string  `json:"op"`
	Value float64 `json:"value,omitempty"`
	Label string  `json:"label,omitempty"`
}

// Subscribe starts handling remote playback commands.
func (s *Streamer) Subscribe() {
	if token := s.client.Subscribe(s.config.Mqtt.Topics.Control, 0, s.handleControlMessage); token.Wait() && token.Error() != nil {
		log.Println(token.Error())
		os.Exit(1)
	}
}

// handleControlMessage runs on the MQTT goroutine; commands are queued and
// dispatched between frames so all engine calls stay on the tick loop.
func (s *Streamer) handleControlMessage(client mqtt.Client, msg mqtt.Message) {
	var m ControlMessage
	if err := json.Unmarshal(msg.Payload(), &m); err != nil {
		log.Printf("bad control message on %s: %v", msg.Topic(), err)
		return
	}
	s.commands <- m
}

func (s *Streamer) dispatch(m ControlMessage) {
	h, ok := s.roots[m.Name]
	if !ok {
		log.Printf("control: unknown root %q", m.Name)
		return
	}

	var err error
	switch m.Op {
	case "play":
		err = s.ctrl.Play(h)
	case "pause":
		err = s.ctrl.Pause(h)
	case "reverse":
		err = s.ctrl.Reverse(h)
	case "restart":
		err = s.ctrl.Restart(h)
	case "seek":
		if m.Label != "" {
			err = s.ctrl.SeekLabel(h, m.Label)
		} else {
			err = s.ctrl.Seek(h, m.Value)
		}
	case "rate":
		err = s.ctrl.SetTimeScale(h, m.Value)
	case "kill":
		err = s.ctrl.Kill(h)
	default:
		log.Printf("control: unknown op %q", m.Op)
		return
	}

	if err != nil {
		log.Printf("control: %s %s: %v", m.Op, m.Name, err)
	}
}
