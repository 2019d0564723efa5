package controller

import (
	"errors"

	"termpix/device"
	"termpix/frame"
	"termpix/screen"
)

// session owns everything that lives for a single run: the painted cache,
// the reusable frame buffer and the hidden cursor.
type session struct {
	writer device.Writer
	cache  *screen.Cache
	frame  frame.Frame
}

func openSession(w device.Writer) (*session, error) {
	if err := w.HideCursor(); err != nil {
		return nil, err
	}
	return &session{writer: w, cache: screen.NewCache()}, nil
}

// close shows the cursor and drops the cache. Both steps always run.
func (s *session) close() error {
	s.cache.Invalidate()
	s.frame = nil
	return errors.Join(s.writer.ShowCursor(), s.writer.Flush())
}
