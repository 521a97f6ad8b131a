package stream

// Config for a motiontx host.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Clock struct {
		FrameRate    float64 `yaml:"frameRate"`
		TimeScale    float64 `yaml:"timeScale"`
		LagThreshold float64 `yaml:"lagThreshold"`
		LagCap       float64 `yaml:"lagCap"`
	} `yaml:"clock"`
}
