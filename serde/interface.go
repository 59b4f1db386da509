// Serde is a package for serializing and deserializing histogram snapshots
package serde

import "github.com/histkit/histogram-go-lib/hist"

type Serializer[L comparable, M hist.Measure] interface {
	Encode(snapshot hist.Snapshot[L, M]) ([]byte, error)
}

type Deserializer[L comparable, M hist.Measure] interface {
	Decode(data []byte) (hist.Snapshot[L, M], error)
}

type Serde[L comparable, M hist.Measure] interface {
	Serializer[L, M]
	Deserializer[L, M]
}
