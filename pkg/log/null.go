package log

// NewNullLogger returns a Logger that discards everything. Components
// given no logger fall back to it.
func NewNullLogger() Logger { return discard{} }

type discard struct{}

func (discard) Infof(string, ...interface{})  {}
func (discard) Errorf(string, ...interface{}) {}
func (discard) Debugf(string, ...interface{}) {}
func (discard) Fatal(...interface{})          {}
