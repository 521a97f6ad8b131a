package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/motiontx/api"
	"github.com/matt-g-everett/motiontx/motion"
	"github.com/matt-g-everett/motiontx/stream"
)

type app struct {
	Config   stream.Config
	Client   mqtt.Client
	Streamer *stream.Streamer
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	a.Streamer.Subscribe()
}

func (a *app) run() {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	a.Streamer.Run()
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&a.Config)
	if err != nil {
		panic(err)
	}
}

// buildShow schedules the demo animation: a brightness pulse with a colour
// sweep overlapping its tail, looping forever.
func buildShow(ctrl *motion.Controller) (motion.Handle, error) {
	seq := ctrl.NewSequence(motion.SequenceOptions{Repeat: -1, Yoyo: true})

	fade, err := ctrl.NewTween("lamp", map[string]motion.Property{
		"brightness": motion.Scalar(0, 1),
	}, 2.0, motion.TweenOptions{Ease: motion.MustLookup("inOutQuad")})
	if err != nil {
		return motion.Handle{}, err
	}
	if err = ctrl.Add(seq, fade, motion.At(0)); err != nil {
		return motion.Handle{}, err
	}
	if err = ctrl.AddLabel(seq, "peak", motion.FromEnd(0)); err != nil {
		return motion.Handle{}, err
	}

	gradient := motion.GradientTable{
		{0.0, 0.0},
		{6.0, 0.04},   // Pink
		{87.0, 0.14},  // Red
		{88.0, 0.28},  // Orange
		{98.0, 0.42},  // Yellow
		{180.0, 0.56}, // Green
		{190.0, 0.70}, // Turquiose
		{320.0, 0.84}, // Blue
		{328.0, 0.91}, // Violet
		{360.0, 1.0},  // Pink wrap
	}
	sweep, err := ctrl.NewTween("strip", map[string]motion.Property{
		"colour": motion.Gradient(gradient, 0, 1),
	}, 3.0, motion.TweenOptions{Ease: motion.MustLookup("outSine")})
	if err != nil {
		return motion.Handle{}, err
	}
	if err = ctrl.Add(seq, sweep, motion.AtLabel("peak", -0.5)); err != nil {
		return motion.Handle{}, err
	}

	return seq, nil
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: %+v", a.Config)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("motiontx").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	client := mqtt.NewClient(options)

	clock := motion.NewClock()
	if a.Config.Clock.TimeScale > 0 {
		clock.TimeScale = a.Config.Clock.TimeScale
	}
	if a.Config.Clock.LagThreshold != 0 {
		clock.LagThreshold = a.Config.Clock.LagThreshold
		clock.LagCap = a.Config.Clock.LagCap
	}
	ctrl := motion.NewController(clock)

	a.Client = client
	a.Streamer = stream.NewStreamer(a.Config, client, ctrl)

	show, err := buildShow(ctrl)
	if err != nil {
		panic(err)
	}
	a.Streamer.Register("show", show)
	ctrl.Play(show)

	go api.NewApi(a.Streamer).Serve()

	a.run()
}
