package serde

import (
	"encoding/json"

	pkgerr "github.com/pkg/errors"

	"github.com/histkit/histogram-go-lib/hist"
)

// JSON is a snapshot serde with the json encoding
type JSON[L comparable, M hist.Measure] struct {
	Indent bool
}

// Encode serializes a snapshot
func (s JSON[L, M]) Encode(snapshot hist.Snapshot[L, M]) ([]byte, error) {

	var (
		data []byte
		err  error
	)

	if s.Indent {
		data, err = json.MarshalIndent(snapshot, "", "  ")
	} else {
		data, err = json.Marshal(snapshot)
	}

	if err != nil {
		return nil, pkgerr.Wrap(err, "encode snapshot")
	}

	return data, nil
}

// Decode deserializes a snapshot
func (s JSON[L, M]) Decode(data []byte) (hist.Snapshot[L, M], error) {

	var snapshot hist.Snapshot[L, M]
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return snapshot, pkgerr.Wrap(err, "decode snapshot")
	}

	return snapshot, nil
}
