/*
DESCRIPTION
  control.go implements Control and QueryAck: both are Context-shaped
  payloads (CIF0-3/7, full data fields) used inside a Command — Control
  to set field values, QueryAck to report a controllee's current state.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/

package vita49

import "github.com/ausocean/vita49/internal/bitio"

// Control carries the fields a controller asks a controllee to set.
type Control struct {
	*Context
}

// NewControlPayload returns an empty Control.
func NewControlPayload() *Control { return &Control{Context: NewContext()} }

func (c *Control) encode(w *bitio.Writer, _ ControlAckMode) error { return c.Context.Encode(w) }

// QueryAck reports a controllee's current field state in response to a
// state-query request.
type QueryAck struct {
	*Context
}

// NewQueryAckPayload returns an empty QueryAck.
func NewQueryAckPayload() *QueryAck { return &QueryAck{Context: NewContext()} }

func (q *QueryAck) encode(w *bitio.Writer, _ ControlAckMode) error { return q.Context.Encode(w) }
