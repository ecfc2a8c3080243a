package report

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/mcstats/mcstats/internal/models"
)

// WriteMsgpack encodes the report in msgpack for machine consumers.
func WriteMsgpack(w io.Writer, r *models.Report) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("msgpack")
	return enc.Encode(r)
}

// ReadMsgpack decodes a report previously written with WriteMsgpack.
func ReadMsgpack(rd io.Reader) (*models.Report, error) {
	dec := msgpack.NewDecoder(rd)
	dec.SetCustomStructTag("msgpack")
	var r models.Report
	if err := dec.Decode(&r); err != nil {
		return nil, err
	}
	return &r, nil
}
