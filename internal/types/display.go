package types

import "time"

// DisplayFormat is the configured policy for rendering timestamps in
// responses. It replaces any reliance on process-wide locale state.
type DisplayFormat struct {
	Layout   string
	Location *time.Location
}

func DefaultDisplayFormat() DisplayFormat {
	return DisplayFormat{
		Layout:   "02/01/2006 15:04:05",
		Location: time.Local,
	}
}

func (df DisplayFormat) FormatTime(t time.Time) string {
	layout := df.Layout
	if layout == "" {
		layout = "02/01/2006 15:04:05"
	}
	loc := df.Location
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(layout)
}
