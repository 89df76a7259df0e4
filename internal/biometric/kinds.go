package biometric

// Kind identifies a class of biometric sensor.
type Kind string

const (
	KindFace        Kind = "face"
	KindFingerprint Kind = "fingerprint"
	KindIris        Kind = "iris"
	KindOther       Kind = "other"
)

// LabelFor returns the user-facing name for the strongest kind in the
// set. Precedence: face, then fingerprint, then iris; anything else
// gets the generic label.
func LabelFor(kinds []Kind) string {
	has := func(want Kind) bool {
		for _, kind := range kinds {
			if kind == want {
				return true
			}
		}
		return false
	}

	switch {
	case has(KindFace):
		return "Face ID"
	case has(KindFingerprint):
		return "Touch ID"
	case has(KindIris):
		return "Iris Recognition"
	default:
		return "Biometric Authentication"
	}
}
