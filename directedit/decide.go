package directedit

// editKeyName is the key that starts an ExplicitEditKey edit.
const editKeyName = "F2"

// Filter reports whether ev should go on to target resolution. A false
// result means the key belongs to someone else and its default action must
// be left alone: a modifier pressed on its own, typing inside a text
// control, or a read-only view.
func Filter(ev Event, readOnly bool) bool {
	if (ev.Alt || ev.Shift) && ev.modifierActive() {
		return false
	}
	if ev.InTextInput {
		return false
	}
	if readOnly {
		return false
	}
	return true
}

// ResolveTarget finds the label a direct edit would apply to. The first
// selected node wins; the first selected edge is only consulted when that
// node yields no label id.
func ResolveTarget(nodes []Node, edges []Edge) (LabelRef, bool) {
	if ref, ok := firstSelectedLabel(nodes); ok {
		return ref, true
	}
	return firstSelectedLabel(edges)
}

func firstSelectedLabel[E Element](elems []E) (LabelRef, bool) {
	for _, el := range elems {
		if el.IsSelected() {
			return el.EditableLabel()
		}
	}
	return LabelRef{}, false
}

// Decide turns one key event into at most one activation command.
func Decide(ev Event, snap Snapshot) Result {
	if !Filter(ev, snap.ReadOnly) {
		return Result{}
	}
	res := Result{PreventDefault: true}

	validFirstInputChar := !ev.Meta && !ev.Ctrl && IsDirectEditChar(ev.Key)

	target, ok := ResolveTarget(snap.Nodes, snap.Edges)
	if !ok || !target.Editable {
		return res
	}

	switch {
	case validFirstInputChar:
		seed, _ := singleUnit(ev.Key)
		res.Command = Command{
			Trigger:       TypedCharacter,
			TargetLabelID: target.ID,
			Seed:          seed,
			HasSeed:       true,
		}
		res.Activate = true
	case ev.Key == editKeyName:
		res.Command = Command{
			Trigger:       ExplicitEditKey,
			TargetLabelID: target.ID,
		}
		res.Activate = true
	}
	return res
}
