package match

// Button is a clickable screen rectangle. After a Reset it ignores presses
// until it has been ticked cooldown times, so one held click cannot trigger
// it twice.
type Button struct {
	X, Y, W, H int
	Label      string

	cooldown int
	ticks    int
	clicked  bool
}

// NewButton creates a button whose cooldown starts unexpired.
func NewButton(x, y, w, h int, label string, cooldown int) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Label: label, cooldown: cooldown}
}

// Tick advances the cooldown by one frame.
func (b *Button) Tick() {
	if b.ticks < b.cooldown {
		b.ticks++
	}
}

// Contains reports whether the pixel lies inside the button.
func (b *Button) Contains(px, py int) bool {
	return px >= b.X && px < b.X+b.W && py >= b.Y && py < b.Y+b.H
}

// Ready reports whether the cooldown has elapsed.
func (b *Button) Ready() bool { return b.ticks >= b.cooldown }

// Poll updates the clicked state from the cursor and left-button state and
// returns it. While cooling down the button is never clicked.
func (b *Button) Poll(px, py int, pressed bool) bool {
	if !b.Ready() {
		b.clicked = false
		return false
	}
	if pressed && b.Contains(px, py) {
		b.clicked = true
	}
	return b.clicked
}

// Reset restarts the cooldown and clears the clicked state.
func (b *Button) Reset() {
	b.ticks = 0
	b.clicked = false
}
