package framework

import (
	"strconv"

	"github.com/gravitational/trace"
)

// Flag aliases bool to support property file and environment serialisation
type Flag bool

// Bool returns this flag as bool
func (r Flag) Bool() bool {
	return bool(r)
}

// SetEnv interprets data as bool.
// SetEnv implements configure.EnvSetter
func (r *Flag) SetEnv(data string) error {
	v, err := strconv.ParseBool(data)
	if err != nil {
		return trace.BadParameter("cannot parse %q as boolean: %v", data, err)
	}
	*r = Flag(v)
	return nil
}

// Count aliases int to support property file and environment serialisation
type Count int

// Int returns this count as int
func (r Count) Int() int {
	return int(r)
}

// SetEnv interprets data as a non-negative integer.
// SetEnv implements configure.EnvSetter
func (r *Count) SetEnv(data string) error {
	v, err := strconv.Atoi(data)
	if err != nil {
		return trace.BadParameter("cannot parse %q as integer: %v", data, err)
	}
	if v < 0 {
		return trace.BadParameter("%v must be >= 0", v)
	}
	*r = Count(v)
	return nil
}
