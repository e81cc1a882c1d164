package session

// Outcome is what the host should render. The gate is hard: the protected
// surface is not produced at all until authentication is confirmed.
type Outcome int

const (
	// ShowLoading renders a neutral placeholder while the startup check runs.
	ShowLoading Outcome = iota
	// ShowLogin renders the login surface exclusively.
	ShowLogin
	// ShowApp renders the protected tree.
	ShowApp
)

func (o Outcome) String() string {
	switch o {
	case ShowLogin:
		return "login"
	case ShowApp:
		return "app"
	default:
		return "loading"
	}
}

// Decide is the route gate: a pure function of {loading, isAuthenticated}
// with no state of its own.
func Decide(loading, authenticated bool) Outcome {
	if loading {
		return ShowLoading
	}
	if !authenticated {
		return ShowLogin
	}
	return ShowApp
}
