package game

// Countdown approximates the round timer between TIME_LEFT resyncs.
type Countdown struct {
	session   *Session
	presenter Presenter
}

func NewCountdown(session *Session, presenter Presenter) *Countdown {
	return &Countdown{session: session, presenter: presenter}
}

// Tick runs once per second. At zero it keeps reporting zero.
func (c *Countdown) Tick() int {
	left := c.session.tickDown()
	c.presenter.Present(SetTimeLeft{Seconds: left})
	return left
}
