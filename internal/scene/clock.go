package scene

// DefaultSpeed is the clock advance per frame.
const DefaultSpeed = 1.0 / 144

// SpeedFactor scales the speed for each Faster or Slower step.
const SpeedFactor = 1.1

// Clock is the animation time source. It only advances while running, and
// speed changes are ignored while paused.
type Clock struct {
	time    float64
	speed   float64
	running bool
}

func NewClock(speed float64, running bool) *Clock {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return &Clock{speed: speed, running: running}
}

func (c *Clock) Tick() {
	if c.running {
		c.time += c.speed
	}
}

func (c *Clock) Toggle() bool {
	c.running = !c.running
	return c.running
}

func (c *Clock) Faster() {
	if c.running {
		c.speed *= SpeedFactor
	}
}

func (c *Clock) Slower() {
	if c.running {
		c.speed /= SpeedFactor
	}
}

func (c *Clock) Time() float64  { return c.time }
func (c *Clock) Speed() float64 { return c.speed }
func (c *Clock) Running() bool  { return c.running }
