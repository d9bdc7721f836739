package render

import "slices"

const (
	profilePicClass = "profile-pic"
	flippedClass    = "flipped"
)

// ActivationKeys are the keys that activate the profile picture like a click.
var ActivationKeys = []string{"Enter", " "}

// ProfileToggle is the flip state of the header profile picture.
// The zero value is unflipped.
type ProfileToggle struct {
	flipped bool
}

// Click flips the picture and returns the new state.
func (t *ProfileToggle) Click() bool {
	t.flipped = !t.flipped
	return t.flipped
}

// KeyDown handles a key press. Activation keys toggle the picture and report
// handled=true, meaning the default key action must be suppressed.
func (t *ProfileToggle) KeyDown(key string) (handled bool) {
	if !slices.Contains(ActivationKeys, key) {
		return false
	}
	t.Click()
	return true
}

func (t ProfileToggle) Flipped() bool {
	return t.flipped
}

// Classes returns the class attribute of the profile picture.
func (t ProfileToggle) Classes() string {
	classes := profilePicClass + " img-fluid rounded-circle mb-3"
	if t.flipped {
		classes += " " + flippedClass
	}
	return classes
}
