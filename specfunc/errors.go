package specfunc

import "errors"

var (
	// ErrDomain indicates an argument outside the mathematical domain of
	// the requested function (e.g. LogGamma of a non-positive value).
	ErrDomain = errors.New("specfunc: argument outside function domain")
)
