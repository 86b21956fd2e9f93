// seehuhn.de/go/spider - interactive radar charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scene

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// EventType identifies the kind of a pointer event.
type EventType int

const (
	PointerOver EventType = iota
	PointerOut
	DragStart
	Drag
	DragEnd
)

func (t EventType) String() string {
	switch t {
	case PointerOver:
		return "pointerover"
	case PointerOut:
		return "pointerout"
	case DragStart:
		return "dragstart"
	case Drag:
		return "drag"
	case DragEnd:
		return "dragend"
	default:
		return "unknown"
	}
}

// Event describes a pointer event delivered to a node.
type Event struct {
	Type   EventType
	Target *Node

	// Pos is the pointer position in the target's coordinates.
	Pos vec.Vec2

	// DX and DY give the pointer movement since the previous drag event,
	// in the target's coordinates.  They are zero for other event types.
	DX, DY float64
}

// Handler is a callback for pointer events.
type Handler func(*Event)

// On registers h to be called for events of type t delivered to n.
func (n *Node) On(t EventType, h Handler) {
	if n.handlers == nil {
		n.handlers = make(map[EventType][]Handler)
	}
	n.handlers[t] = append(n.handlers[t], h)
}

// Listens reports whether n has a handler for events of type t.
func (n *Node) Listens(t EventType) bool {
	return len(n.handlers[t]) > 0
}

func (n *Node) interactive() bool {
	return len(n.handlers) > 0
}

// Dispatch delivers e to the handlers registered on n.
// Events do not bubble to ancestors.
func (n *Node) Dispatch(e *Event) {
	e.Target = n
	for _, h := range n.handlers[e.Type] {
		h(e)
	}
}

// Document is the root of a scene.  Charts are mounted into named host
// nodes, which are direct children of the document root.
//
// A Document is not safe for concurrent use.  All event handlers run
// synchronously on the goroutine which feeds pointer input.
type Document struct {
	root  *Node
	hosts map[string]*Node

	pointer pointerState
}

// pointerState tracks the single pointer of a document between events.
type pointerState struct {
	down    bool
	target  *Node    // node which received DragStart, nil if none
	last    vec.Vec2 // pointer position of the previous event
	hovered *Node
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{
		root:  NewGroup("document"),
		hosts: make(map[string]*Node),
	}
}

// Root returns the root node of the document.
func (d *Document) Root() *Node {
	return d.root
}

// AddHost creates a host node for the given selector, or returns the
// existing one.  A leading "#" in the selector is not part of the node ID.
func (d *Document) AddHost(selector string) *Node {
	if h, ok := d.hosts[selector]; ok {
		return h
	}
	h := NewGroup("host")
	h.ID = hostID(selector)
	d.root.Append(h)
	d.hosts[selector] = h
	return h
}

// Host returns the host node for the given selector, or nil if there is
// none.
func (d *Document) Host(selector string) *Node {
	return d.hosts[selector]
}

func hostID(selector string) string {
	if len(selector) > 0 && selector[0] == '#' {
		return selector[1:]
	}
	return selector
}

// HitTest returns the topmost node with event handlers whose shape
// contains p, or nil.  The point p is given in document coordinates.
func (d *Document) HitTest(p vec.Vec2) *Node {
	var hit *Node
	d.root.Walk(func(n *Node, ctm matrix.Matrix) {
		if !n.interactive() {
			return
		}
		inv, ok := invert(ctm)
		if !ok {
			return
		}
		if n.contains(Apply(inv, p)) {
			hit = n // later nodes are painted on top
		}
	})
	return hit
}

// PointerDown starts a drag gesture on the topmost interactive node under p.
func (d *Document) PointerDown(p vec.Vec2) {
	ps := &d.pointer
	ps.down = true
	ps.last = p
	ps.target = nil

	target := d.HitTest(p)
	if target == nil || !target.Listens(DragStart) && !target.Listens(Drag) && !target.Listens(DragEnd) {
		return
	}
	ps.target = target
	target.Dispatch(&Event{Type: DragStart, Pos: toLocal(target, p)})
}

// PointerMove reports pointer movement to p.  While a gesture is active,
// the movement is delivered as a Drag event to the gesture's target.
// Otherwise hover changes are reported as PointerOut/PointerOver events.
func (d *Document) PointerMove(p vec.Vec2) {
	ps := &d.pointer
	if ps.down {
		if ps.target != nil && p != ps.last {
			delta := toLocalDelta(ps.target, p.Sub(ps.last))
			ps.target.Dispatch(&Event{
				Type: Drag,
				Pos:  toLocal(ps.target, p),
				DX:   delta.X,
				DY:   delta.Y,
			})
		}
		ps.last = p
		return
	}

	hit := d.HitTest(p)
	if hit != ps.hovered {
		if ps.hovered != nil {
			ps.hovered.Dispatch(&Event{Type: PointerOut, Pos: toLocal(ps.hovered, p)})
		}
		if hit != nil {
			hit.Dispatch(&Event{Type: PointerOver, Pos: toLocal(hit, p)})
		}
		ps.hovered = hit
	}
	ps.last = p
}

// PointerUp ends the current gesture.  Movement between the last reported
// position and p is delivered before the DragEnd event.
func (d *Document) PointerUp(p vec.Vec2) {
	d.PointerMove(p)

	ps := &d.pointer
	if ps.target != nil {
		ps.target.Dispatch(&Event{Type: DragEnd, Pos: toLocal(ps.target, p)})
	}
	ps.down = false
	ps.target = nil
}

// Dragging reports whether a drag gesture is in progress.
func (d *Document) Dragging() bool {
	return d.pointer.target != nil
}

func toLocal(n *Node, p vec.Vec2) vec.Vec2 {
	inv, ok := invert(n.CTM())
	if !ok {
		return p
	}
	return Apply(inv, p)
}

func toLocalDelta(n *Node, d vec.Vec2) vec.Vec2 {
	inv, ok := invert(n.CTM())
	if !ok {
		return d
	}
	return vec.Vec2{
		X: inv[0]*d.X + inv[2]*d.Y,
		Y: inv[1]*d.X + inv[3]*d.Y,
	}
}
