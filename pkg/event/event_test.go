package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

type testData struct {
	data string
}

func TestEventSubscribe(t *testing.T) {
	emitter := New[testData]()
	defer emitter.Close()

	receiver, err := emitter.Subscribe("LockedFunds", 0)
	assert.NoError(t, err)
	wait := make(chan testData)

	go func() {
		wait <- <-receiver
	}()
	emitter.Publish("LockedFunds", testData{data: "test"})

	result := <-wait
	assert.Equal(t, "test", result.data)

	assert.NoError(t, emitter.Unsubscribe("LockedFunds", receiver))
	emitter.Publish("LockedFunds", testData{data: "test"})
	assert.Equal(t, 0, emitter.Subscribers("LockedFunds"))
	_, open := <-receiver
	assert.False(t, open)

	assert.ErrorIs(t, emitter.Unsubscribe("UnlockedFunds", receiver), ErrEventNotFound)
}

func TestEventOn(t *testing.T) {
	emitter := New[testData]()
	defer emitter.Close()

	wait := make(chan testData)
	assert.NoError(t, emitter.On("UnlockedFunds", wait))

	go func() {
		emitter.Publish("UnlockedFunds", testData{data: "test-on"})
	}()

	result := <-wait
	assert.Equal(t, "test-on", result.data)

	assert.NoError(t, emitter.UnsubscribeAll("UnlockedFunds"))
	emitter.Publish("UnlockedFunds", testData{data: "test-on"})
	assert.Equal(t, 0, emitter.Subscribers("UnlockedFunds"))
	assert.ErrorIs(t, emitter.UnsubscribeAll("UnlockedFunds"), ErrEventNotFound)
}

func TestEventOrderAndFanOut(t *testing.T) {
	emitter := New[int]()
	first, err := emitter.Subscribe("topic", 10)
	assert.NoError(t, err)
	second, err := emitter.Subscribe("topic", 10)
	assert.NoError(t, err)

	for i := 0; i < 10; i++ {
		emitter.Publish("topic", i)
	}
	assert.NoError(t, emitter.Close())

	eg := new(errgroup.Group)
	for _, receiver := range []<-chan int{first, second} {
		receiver := receiver
		eg.Go(func() error {
			expected := 0
			for val := range receiver {
				assert.Equal(t, expected, val)
				expected++
			}
			assert.Equal(t, 10, expected)
			return nil
		})
	}
	assert.NoError(t, eg.Wait())

	_, err = emitter.Subscribe("topic", 1)
	assert.ErrorIs(t, err, ErrClosed)
}
