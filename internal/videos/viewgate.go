package videos

// ViewGate tracks which videos have already fired their first-play event in
// the current viewing session. The catalog itself never deduplicates view
// counts; a correct caller asks the gate before calling RecordView.
type ViewGate struct {
	seen map[string]struct{}
}

func NewViewGate() *ViewGate {
	return &ViewGate{seen: make(map[string]struct{})}
}

// FirstPlay reports whether this is the first play of the video in this
// session, and marks it as played.
func (g *ViewGate) FirstPlay(videoID string) bool {
	if _, ok := g.seen[videoID]; ok {
		return false
	}
	g.seen[videoID] = struct{}{}
	return true
}
