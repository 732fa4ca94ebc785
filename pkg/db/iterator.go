package db

import (
	"github.com/cockroachdb/pebble"

	"github.com/LiskHQ/lisk-bridge/pkg/collection"
)

func iteratePrefix(iter *pebble.Iterator, limit int, reverse bool) []KeyValue {
	data := []KeyValue{}
	valid := iter.First()
	step := iter.Next
	if reverse {
		valid = iter.Last()
		step = iter.Prev
	}
	for ; valid; valid = step() {
		data = append(data, &keyValue{
			key:   collection.Copy(iter.Key()),
			value: collection.Copy(iter.Value()),
		})
		if limit != -1 && len(data) >= limit {
			break
		}
	}

	if err := iter.Close(); err != nil {
		// iter.Close should never fail. if it fails here, there is a problem in underlying DB which cannot be recovered.
		panic(err)
	}
	return data
}
